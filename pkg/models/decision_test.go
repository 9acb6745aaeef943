package models

import "testing"

func TestParseDecision(t *testing.T) {
	tcs := []struct {
		raw    string
		want   Decision
		wantOk bool
	}{
		{raw: "respond", want: DecisionRespond, wantOk: true},
		{raw: "ignore", want: DecisionIgnore, wantOk: true},
		{raw: "notify", want: DecisionNotify, wantOk: true},
		{raw: "RESPOND", wantOk: false},
		{raw: "archive", wantOk: false},
		{raw: "", wantOk: false},
	}

	for _, tc := range tcs {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := ParseDecision(tc.raw)
			if ok != tc.wantOk {
				t.Fatalf("ParseDecision(%q) ok = %v, want %v", tc.raw, ok, tc.wantOk)
			}
			if ok && got != tc.want {
				t.Errorf("ParseDecision(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDecisionTerminal(t *testing.T) {
	if DecisionRespond.Terminal() {
		t.Error("respond should not be terminal")
	}
	if !DecisionIgnore.Terminal() {
		t.Error("ignore should be terminal")
	}
	if !DecisionNotify.Terminal() {
		t.Error("notify should be terminal")
	}
}
