package tayeb

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const testFeed = `{
	"provider": "example-screening",
	"verdicts": [
		{"id": "BTC", "name": "Bitcoin", "symbol": "BTC", "status": "compliant", "rationale": "No interest-bearing mechanism"},
		{"id": "USUR", "name": "Usury Coin", "symbol": "USUR", "status": "non-compliant", "rationale": "Interest-bearing"},
		{"id": "ETH", "name": "Ethereum", "symbol": "ETH", "status": "compliant", "rationale": "Utility token"}
	]
}`

func TestFetchScreeningFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	records, err := FetchScreeningFeed(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("FetchScreeningFeed failed: %v", err)
	}

	// Only the compliant verdicts survive, in feed order.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "BTC" || records[1].ID != "ETH" {
		t.Errorf("unexpected records: %+v", records)
	}
	for _, r := range records {
		if !r.Verified {
			t.Errorf("record %q should be verified", r.ID)
		}
	}
	if records[0].ComplianceReason != "No interest-bearing mechanism" {
		t.Errorf("rationale not carried over: %+v", records[0])
	}
}

func TestFetchScreeningFeedErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notfound":
			http.NotFound(w, r)
		case "/noverdicts":
			w.Write([]byte(`{"provider": "x"}`))
		case "/anonymous":
			w.Write([]byte(`{"verdicts": [{"status": "compliant"}]}`))
		}
	}))
	defer srv.Close()

	if _, err := FetchScreeningFeed(srv.Client(), srv.URL+"/notfound"); err == nil {
		t.Error("a 404 response should fail")
	}
	if _, err := FetchScreeningFeed(srv.Client(), srv.URL+"/noverdicts"); err == nil {
		t.Error("a feed without verdicts should fail")
	}
	if _, err := FetchScreeningFeed(srv.Client(), srv.URL+"/anonymous"); err == nil {
		t.Error("a compliant verdict without an id should fail")
	}
}

func TestExtractVerdictsSkipsUnknownStatus(t *testing.T) {
	jobj := map[string]any{
		"verdicts": []any{
			map[string]any{"id": "A", "status": "compliant"},
			map[string]any{"id": "B", "status": "under-review"},
			map[string]any{"id": "C"},
		},
	}
	records, err := extractVerdicts(jobj)
	if err != nil {
		t.Fatalf("extractVerdicts failed: %v", err)
	}
	if len(records) != 1 || records[0].ID != "A" {
		t.Errorf("only explicit compliant verdicts should be kept, got %+v", records)
	}
}
