// Package policy holds the user-tunable rules which steer triage and
// response generation. The rules live in policy.toml inside the mai
// config dir so that they survive upgrades and can be versioned by the
// user.
package policy

type Policy struct {
	// Background describes who the assistant works for. It is injected
	// into both the triage prompt and the response prompt.
	Background string `toml:"background"`

	Triage   Triage   `toml:"triage"`
	Response Response `toml:"response"`
	Calendar Calendar `toml:"calendar"`
}

// Triage rules. Each entry is one situation, rendered as a bullet in
// the classifier's system prompt.
type Triage struct {
	RespondWhen []string `toml:"respond_when"`
	IgnoreWhen  []string `toml:"ignore_when"`
	NotifyWhen  []string `toml:"notify_when"`
}

// Response preferences, the first of the two preference blocks in the
// response loop's system prompt.
type Response struct {
	Tone    string `toml:"tone"`
	SignOff string `toml:"sign_off"`
}

// Calendar preferences, the second preference block.
type Calendar struct {
	WorkdayStart          string `toml:"workday_start"`
	WorkdayEnd            string `toml:"workday_end"`
	DefaultMeetingMinutes int    `toml:"default_meeting_minutes"`
}

// Default returns a policy which behaves sensibly for a generic office
// inbox. Users are expected to edit policy.toml rather than live with
// these.
func Default() *Policy {
	return &Policy{
		Background: "I'm a software engineer at a mid-sized company. I get a lot of email, most of it doesn't need me.",
		Triage: Triage{
			RespondWhen: []string{
				"direct questions addressed to me",
				"meeting requests needing confirmation",
				"critical issues in systems I own",
			},
			IgnoreWhen: []string{
				"marketing newsletters",
				"spam",
				"mass company announcements",
			},
			NotifyWhen: []string{
				"team member out sick",
				"build system notifications",
				"project status updates",
			},
		},
		Response: Response{
			Tone:    "professional and concise",
			SignOff: "Best regards",
		},
		Calendar: Calendar{
			WorkdayStart:          "9:00",
			WorkdayEnd:            "17:00",
			DefaultMeetingMinutes: 30,
		},
	}
}
