package openai

import (
	"testing"

	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/vendors/vendorstest"
)

func TestSetup(t *testing.T) {
	vendorstest.RunSetupTests(t, "OPENAI_API_KEY", true, func() models.Completer {
		v := GptDefault
		return &v
	})
}

func TestSetup_MapsConfigOntoCompleter(t *testing.T) {
	v := GptDefault
	mt := 123
	v.MaxTokens = &mt
	v.Temperature = 0.22
	v.TopP = 0.33
	v.Model = "gpt-4.1"

	t.Setenv("OPENAI_API_KEY", "k")
	if err := v.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if v.Completer.Model != "gpt-4.1" {
		t.Errorf("model got %q want %q", v.Completer.Model, "gpt-4.1")
	}
	if v.Completer.MaxTokens == nil || *v.Completer.MaxTokens != mt {
		t.Errorf("max tokens not mapped, got %#v", v.Completer.MaxTokens)
	}
	if v.Completer.Temperature == nil || *v.Completer.Temperature != 0.22 {
		t.Errorf("temperature not mapped, got %#v", v.Completer.Temperature)
	}
	if v.Completer.TopP == nil || *v.Completer.TopP != 0.33 {
		t.Errorf("top_p not mapped, got %#v", v.Completer.TopP)
	}
	if v.ToolChoice == nil || *v.ToolChoice != "required" {
		t.Errorf("tool choice expected 'required', got %#v", v.ToolChoice)
	}
}
