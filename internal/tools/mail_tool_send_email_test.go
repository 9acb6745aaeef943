package tools

import (
	"strings"
	"testing"

	pub_models "github.com/baalimago/mai/pkg/models"
)

func TestSendEmailTool_Call(t *testing.T) {
	out, err := SendEmail.Call(pub_models.Input{
		"recipient": "alice@corp.example",
		"subject":   "Re: quarterly numbers",
		"body":      "Attached below.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "alice@corp.example") || !strings.Contains(out, "Re: quarterly numbers") {
		t.Errorf("confirmation should echo recipient and subject, got: %q", out)
	}
}

func TestSendEmailTool_BadInputs(t *testing.T) {
	testCases := []struct {
		name  string
		input pub_models.Input
	}{
		{"recipient wrong type", pub_models.Input{"recipient": 1, "subject": "s", "body": "b"}},
		{"subject wrong type", pub_models.Input{"recipient": "a@b.c", "subject": 1, "body": "b"}},
		{"body wrong type", pub_models.Input{"recipient": "a@b.c", "subject": "s", "body": 1}},
	}
	for _, tC := range testCases {
		t.Run(tC.name, func(t *testing.T) {
			if _, err := SendEmail.Call(tC.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}
