package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiEscapeSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func visibleRuneCount(s string) int {
	// Strip common ANSI SGR sequences then count runes. This keeps our width
	// calculations stable when strings already contain ANSI escapes.
	clean := ansiEscapeSeq.ReplaceAllString(s, "")
	return utf8.RuneCountInString(clean)
}

// WidthAppropriateTrunc fits "prefix + toShorten" into one terminal row,
// replacing the overflowing middle with a colored infix. Newlines and tabs
// are flattened first so one row stays one row.
//
// prefixColor and truncColor are raw ANSI sequences (or empty). Colors are
// disabled when NO_COLOR is truthy.
func WidthAppropriateTrunc(toShorten, prefix, prefixColor, truncColor string, padding int) (string, error) {
	toShorten = strings.ReplaceAll(toShorten, "\n", "\\n")
	toShorten = strings.ReplaceAll(toShorten, "\t", "\\t")

	termWidth, err := TermWidth()
	if err != nil {
		return "", fmt.Errorf("get term width: %w", err)
	}

	return fillRemainderOfTermWidth(prefix, toShorten, prefixColor, truncColor, termWidth, padding), nil
}

func fillRemainderOfTermWidth(prefix, remainder, prefixColor, truncColor string, termWidth, padding int) string {
	infix := " ... "

	// NOTE: prefix may already contain ANSI sequences (callers might pre-colorize).
	// Do not let these escape sequences count towards the terminal width.
	remainingWidth := termWidth - visibleRuneCount(prefix) - padding
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	widthAdjustedRemainder := ""
	r := []rune(remainder)
	if remainingWidth == 0 {
		widthAdjustedRemainder = ""
	} else if len(r) <= remainingWidth {
		widthAdjustedRemainder = remainder
	} else {
		// Keep the head and tail, drop the middle.
		keep := remainingWidth - visibleRuneCount(infix)
		if keep < 2 {
			widthAdjustedRemainder = string(r[:remainingWidth])
		} else {
			head := keep / 2
			tail := keep - head
			widthAdjustedRemainder = string(r[:head]) + Colorize(truncColor, infix) + string(r[len(r)-tail:])
		}
	}

	return Colorize(prefixColor, prefix) + widthAdjustedRemainder
}
