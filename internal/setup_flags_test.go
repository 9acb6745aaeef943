package internal

import (
	"testing"
)

// TestParseFlagsDefaultValues tests the parseFlags function with default values.
func TestParseFlagsDefaultValues(t *testing.T) {
	result, postArgs, err := parseFlags(defaultFlags, []string{"t", "mail.eml"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != defaultFlags {
		t.Fatalf("expected: %+v, got: %+v", defaultFlags, result)
	}
	if len(postArgs) != 2 || postArgs[0] != "t" || postArgs[1] != "mail.eml" {
		t.Fatalf("expected post-flag args to survive, got: %v", postArgs)
	}
}

// TestParseFlagsShortFlags tests the parseFlags function with short flags.
func TestParseFlagsShortFlags(t *testing.T) {
	result, postArgs, err := parseFlags(defaultFlags, []string{"-cm", "mock", "-pol", "/tmp/pol.toml", "-tid", "some_thread", "-mtc", "5", "-r", "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ChatModel != "mock" || result.PolicyPath != "/tmp/pol.toml" || result.ThreadID != "some_thread" ||
		result.MaxToolCalls != 5 || result.PrintRaw != true {
		t.Errorf("Unexpected values for short flags, got %+v", result)
	}
	if len(postArgs) != 1 || postArgs[0] != "t" {
		t.Errorf("expected command to remain in post-flag args, got: %v", postArgs)
	}
}

// TestParseFlagsLongFlags tests the parseFlags function with long flags.
func TestParseFlagsLongFlags(t *testing.T) {
	result, _, err := parseFlags(defaultFlags, []string{
		"--chat-model", "mock", "--policy", "/tmp/pol.toml", "--thread",
		"some_thread", "--max-tool-calls", "5", "--raw", "t",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ChatModel != "mock" || result.PolicyPath != "/tmp/pol.toml" || result.ThreadID != "some_thread" ||
		result.MaxToolCalls != 5 || result.PrintRaw != true {
		t.Errorf("Unexpected values for long flags, got %+v", result)
	}
}

func TestParseFlagsUnparsable(t *testing.T) {
	_, _, err := parseFlags(defaultFlags, []string{"-mtc", "not-a-number", "t"})
	if err == nil {
		t.Fatal("expected error for non-numeric max-tool-calls")
	}
}
