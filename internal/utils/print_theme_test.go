package utils

import (
	"bytes"
	"os"
	"testing"

	pub_models "github.com/baalimago/mai/pkg/models"
)

func TestAttemptPrettyPrint_UsesThemeColorsWhenNoGlow(t *testing.T) {
	// Ensure NO_COLOR isn't set so we exercise color output.
	t.Setenv("NO_COLOR", "")

	// Force the "no glow installed" path.
	origPath := os.Getenv("PATH")
	t.Cleanup(func() { _ = os.Setenv("PATH", origPath) })
	if err := os.Setenv("PATH", ""); err != nil {
		t.Fatalf("set PATH empty: %v", err)
	}

	// Set a clearly identifiable theme color.
	globalTheme = Theme{
		Primary:   "<PRIMARY>",
		Secondary: "<SECONDARY>",
		Breadtext: "<BREADTEXT>",

		RoleUser:   "<USER_COLOR>",
		RoleSystem: "<SYSTEM_COLOR>",
		RoleTool:   "<TOOL_COLOR>",
		RoleOther:  "<OTHER_COLOR>",
	}

	var buf bytes.Buffer
	msg := pub_models.Message{Role: "user", Content: "hello"}
	if err := AttemptPrettyPrint(&buf, msg, "alice", false); err != nil {
		t.Fatalf("AttemptPrettyPrint: %v", err)
	}
	out := buf.String()

	// We should see the themed role color applied (wrapped with ansiReset) and the username used for user role.
	if want := "<USER_COLOR>alice" + ansiReset + ": hello\n"; out != want {
		t.Fatalf("unexpected output\nwant: %q\ngot:  %q", want, out)
	}
}

func TestColorize_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if got := Colorize("<COLOR>", "plain"); got != "plain" {
		t.Fatalf("expected colorization to be disabled, got: %q", got)
	}
}

func TestRoleColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	globalTheme = Theme{
		RoleUser:   "<USER_COLOR>",
		RoleSystem: "<SYSTEM_COLOR>",
		RoleTool:   "<TOOL_COLOR>",
		RoleOther:  "<OTHER_COLOR>",
	}
	testCases := []struct {
		role string
		want string
	}{
		{"user", "<USER_COLOR>"},
		{"system", "<SYSTEM_COLOR>"},
		{"tool", "<TOOL_COLOR>"},
		{"assistant", "<OTHER_COLOR>"},
	}
	for _, tC := range testCases {
		t.Run(tC.role, func(t *testing.T) {
			if got := RoleColor(tC.role); got != tC.want {
				t.Fatalf("expected: %v, got: %v", tC.want, got)
			}
		})
	}
}
