package tayeb

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	A screening feed is the JSON verdict list published by a Sharia
	screening provider, e.g.:

	{
	    "provider": "example-screening",
	    "verdicts": [
	        {
	            "id": "BTC",
	            "name": "Bitcoin",
	            "symbol": "BTC",
	            "status": "compliant",
	            "rationale": "No interest-bearing mechanism"
	        }
	    ]
	}
*/

// FetchScreeningFeed downloads a screening provider's verdict feed and
// returns the assets it marks compliant, ready for owner registration.
// Non-compliant verdicts are skipped, not errors: the registry only
// ever records positive verdicts.
func FetchScreeningFeed(client *http.Client, addr string) ([]AssetRecord, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving screening feed: %w", err)
	}
	return extractVerdicts(jobj)
}

// extractVerdicts pulls the compliant assets out of a decoded feed.
func extractVerdicts(jobj any) ([]AssetRecord, error) {
	path := "$.verdicts[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing screening feed: %q %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing screening feed: %q is not a list", path)
	}

	var records []AssetRecord
	for i, item := range jlist {
		verdict, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("error parsing screening feed: verdict %d is not an object", i)
		}
		if jstring(verdict, "status") != "compliant" {
			continue
		}
		id := jstring(verdict, "id")
		if id == "" {
			return nil, fmt.Errorf("error parsing screening feed: verdict %d has no id", i)
		}
		records = append(records, AssetRecord{
			ID:               id,
			Name:             jstring(verdict, "name"),
			Symbol:           jstring(verdict, "symbol"),
			Verified:         true,
			ComplianceReason: jstring(verdict, "rationale"),
		})
	}
	return records, nil
}

// jstring reads an optional string property from a decoded JSON object.
func jstring(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
