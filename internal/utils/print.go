package utils

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	pub_models "github.com/baalimago/mai/pkg/models"
)

// AttemptPrettyPrint by first checking if the glow command is available, and if so,
// pretty print the chat message. If not found, simply print the message as is,
// with the role colorized per theme.
func AttemptPrettyPrint(out io.Writer, chatMessage pub_models.Message, username string, raw bool) error {
	if raw {
		fmt.Fprintln(out, chatMessage.Content)
		return nil
	}
	role := chatMessage.Role
	if chatMessage.Role == "user" && username != "" {
		role = username
	}
	coloredRole := Colorize(RoleColor(chatMessage.Role), role)

	cmd := exec.Command("glow", "--version")
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(out, "%v: %v\n", coloredRole, chatMessage.Content)
		return nil
	}

	cmd = exec.Command("glow")
	cmd.Stdin = bytes.NewBufferString(chatMessage.Content)
	cmd.Stdout = out
	fmt.Fprintf(out, "%v:", coloredRole)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run glow: %w", err)
	}
	return nil
}

// ShortenedOutput truncates tool output for terminal display. The persisted
// conversation keeps the full output, this is presentation only.
func ShortenedOutput(out string, maxNewlines int) string {
	lines := strings.Split(out, "\n")
	if len(lines) <= maxNewlines {
		return out
	}
	kept := strings.Join(lines[:maxNewlines], "\n")
	return fmt.Sprintf("%v\n... and %v more lines", kept, len(lines)-maxNewlines)
}

// ClearTermTo moves the cursor up upTo lines, blanking each one. A termWidth
// below zero means: look it up.
func ClearTermTo(termWidth, upTo int) error {
	if termWidth < 0 {
		tw, err := TermWidth()
		if err != nil {
			return fmt.Errorf("failed to get term width: %w", err)
		}
		termWidth = tw
	}
	clearLine := strings.Repeat(" ", termWidth)
	for upTo > 0 {
		fmt.Printf("\r%v", clearLine)
		fmt.Printf("\033[%dA", 1)
		upTo--
	}
	fmt.Printf("\r%v", clearLine)
	fmt.Printf("\r")
	return nil
}
