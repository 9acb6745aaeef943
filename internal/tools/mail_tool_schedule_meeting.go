package tools

import (
	"fmt"
	"time"

	pub_models "github.com/baalimago/mai/pkg/models"
)

type ScheduleMeetingTool pub_models.Specification

var ScheduleMeeting = ScheduleMeetingTool{
	Name:        "schedule-meeting",
	Description: "Schedule a calendar meeting with the given attendees.",
	Inputs: &pub_models.InputSchema{
		Type:     "object",
		Required: []string{"attendees", "subject", "duration_minutes", "preferred_day", "start_time"},
		Properties: map[string]pub_models.ParameterObject{
			"attendees": {
				Type:        "array",
				Description: "Email addresses of the attendees.",
				Items:       &pub_models.ParameterObject{Type: "string"},
			},
			"subject": {
				Type:        "string",
				Description: "Subject of the meeting invite.",
			},
			"duration_minutes": {
				Type:        "integer",
				Description: "Meeting length in minutes.",
			},
			"preferred_day": {
				Type:        "string",
				Description: "Day of the meeting, preferably as YYYY-MM-DD.",
			},
			"start_time": {
				Type:        "string",
				Description: "Start time of the meeting, for example '14:00'.",
			},
		},
	},
}

func (s ScheduleMeetingTool) Call(input pub_models.Input) (string, error) {
	attendees, ok := input["attendees"].([]any)
	if !ok {
		return "", fmt.Errorf("attendees must be an array")
	}
	subject, ok := input["subject"].(string)
	if !ok {
		return "", fmt.Errorf("subject must be a string")
	}
	duration, ok := input["duration_minutes"].(float64)
	if !ok {
		return "", fmt.Errorf("duration_minutes must be a number")
	}
	day, ok := input["preferred_day"].(string)
	if !ok {
		return "", fmt.Errorf("preferred_day must be a string")
	}
	startTime, ok := input["start_time"].(string)
	if !ok {
		return "", fmt.Errorf("start_time must be a string")
	}
	return fmt.Sprintf("Meeting '%v' scheduled on %v at %v for %v minutes with %v attendee(s)",
		subject, formatDay(day), startTime, int(duration), len(attendees)), nil
}

func (s ScheduleMeetingTool) Specification() pub_models.Specification {
	return pub_models.Specification(ScheduleMeeting)
}

// formatDay expands an ISO date into something human readable. Non-ISO
// input passes through untouched, models sometimes answer with weekday
// names instead of dates.
func formatDay(day string) string {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return day
	}
	return t.Format("Monday, January 2 2006")
}
