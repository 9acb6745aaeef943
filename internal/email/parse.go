// Package email turns raw input, JSON or pasted plain text, into the
// assistant's Email record.
package email

import (
	"encoding/json"
	"fmt"
	"strings"

	pub_models "github.com/baalimago/mai/pkg/models"
)

// Parse raw bytes into an Email. Input starting with '{' is treated as
// the JSON encoding of the Email record, anything else goes through the
// plain text header heuristic.
func Parse(raw []byte) (pub_models.Email, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return pub_models.Email{}, fmt.Errorf("empty input")
	}
	if strings.HasPrefix(trimmed, "{") {
		var e pub_models.Email
		if err := json.Unmarshal([]byte(trimmed), &e); err != nil {
			return pub_models.Email{}, fmt.Errorf("failed to unmarshal email: %w", err)
		}
		e.ThreadBody = normalizeBody(e.ThreadBody)
		return e, nil
	}
	return parsePlain(trimmed), nil
}

// parsePlain reads From/To/Subject headers until the first blank line,
// the rest becomes the body. Pasted emails rarely follow RFC 5322 to the
// letter, so unknown header-looking lines are folded into the body.
func parsePlain(raw string) pub_models.Email {
	var e pub_models.Email
	lines := strings.Split(raw, "\n")
	bodyStart := 0
HEADERS:
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			bodyStart = i + 1
			break HEADERS
		case hasHeader(trimmed, "From:"):
			e.Author = headerValue(trimmed, "From:")
		case hasHeader(trimmed, "To:"):
			e.Recipient = headerValue(trimmed, "To:")
		case hasHeader(trimmed, "Subject:"):
			e.Subject = headerValue(trimmed, "Subject:")
		default:
			// Not a header we know, the 'headers' were body all along
			bodyStart = i
			break HEADERS
		}
		bodyStart = i + 1
	}
	e.ThreadBody = normalizeBody(strings.Join(lines[bodyStart:], "\n"))
	return e
}

func hasHeader(line, header string) bool {
	return len(line) >= len(header) && strings.EqualFold(line[:len(header)], header)
}

func headerValue(line, header string) string {
	return strings.TrimSpace(line[len(header):])
}

func normalizeBody(body string) string {
	body = strings.TrimSpace(body)
	if looksLikeHTML(body) {
		body = StripHTML(body)
	}
	return body
}
