package tools

import (
	"strings"
	"testing"

	pub_models "github.com/baalimago/mai/pkg/models"
)

func TestScheduleMeetingTool_Call(t *testing.T) {
	out, err := ScheduleMeeting.Call(pub_models.Input{
		"attendees":        []any{"alice@corp.example", "bob@corp.example"},
		"subject":          "Planning",
		"duration_minutes": 45.0,
		"preferred_day":    "2025-05-01",
		"start_time":       "14:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The day gets formatted, duration and attendee count echoed
	if !strings.Contains(out, "Thursday, May 1 2025") {
		t.Errorf("expected formatted day, got: %q", out)
	}
	if !strings.Contains(out, "45 minutes") {
		t.Errorf("expected echoed duration, got: %q", out)
	}
	if !strings.Contains(out, "2 attendee(s)") {
		t.Errorf("expected attendee count, got: %q", out)
	}
}

func TestScheduleMeetingTool_NonISODayPassesThrough(t *testing.T) {
	out, err := ScheduleMeeting.Call(pub_models.Input{
		"attendees":        []any{"alice@corp.example"},
		"subject":          "Sync",
		"duration_minutes": 30.0,
		"preferred_day":    "next Tuesday",
		"start_time":       "09:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "next Tuesday") {
		t.Errorf("non-ISO day should pass through untouched, got: %q", out)
	}
}

func TestScheduleMeetingTool_BadInputs(t *testing.T) {
	valid := pub_models.Input{
		"attendees":        []any{"a@b.c"},
		"subject":          "s",
		"duration_minutes": 30.0,
		"preferred_day":    "2025-05-01",
		"start_time":       "09:00",
	}
	for _, field := range []string{"attendees", "subject", "duration_minutes", "preferred_day", "start_time"} {
		t.Run(field+" wrong type", func(t *testing.T) {
			input := pub_models.Input{}
			for k, v := range valid {
				input[k] = v
			}
			input[field] = struct{}{}
			if _, err := ScheduleMeeting.Call(input); err == nil {
				t.Error("expected error")
			}
		})
	}
}
