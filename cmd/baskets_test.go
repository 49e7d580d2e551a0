package cmd

import (
	"testing"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
)

func TestParseAllocations(t *testing.T) {
	tests := []struct {
		in      string
		want    []tayeb.Allocation
		wantErr bool
	}{
		{in: "BTC:60,ETH:40", want: []tayeb.Allocation{{Asset: "BTC", Percent: 60}, {Asset: "ETH", Percent: 40}}},
		{in: " BTC : 100 ", want: []tayeb.Allocation{{Asset: "BTC", Percent: 100}}},
		{in: "BTC:50,,ETH:50", want: []tayeb.Allocation{{Asset: "BTC", Percent: 50}, {Asset: "ETH", Percent: 50}}},
		{in: "", wantErr: true},
		{in: "BTC", wantErr: true},
		{in: "BTC:abc", wantErr: true},
		{in: "BTC:-5", wantErr: true},
		{in: "BTC:300", wantErr: true}, // over uint8
	}
	for _, tc := range tests {
		got, err := parseAllocations(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseAllocations(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAllocations(%q) failed: %v", tc.in, err)
			continue
		}
		if len(got) != len(tc.want) {
			t.Errorf("parseAllocations(%q) = %+v, want %+v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("parseAllocations(%q)[%d] = %+v, want %+v", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}
