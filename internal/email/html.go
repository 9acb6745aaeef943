package email

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

func looksLikeHTML(body string) bool {
	lowered := strings.ToLower(body)
	return strings.Contains(lowered, "<html") || strings.Contains(lowered, "<body") || strings.Contains(lowered, "</p>") || strings.Contains(lowered, "<div")
}

// StripHTML extracts the text content of an HTML email body by dropping
// all tags and trimming whitespace. Script and style contents are
// skipped entirely.
func StripHTML(body string) string {
	var text strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(body))
	skipDepth := 0
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			// Malformed HTML: better to hand the model the raw body than nothing
			return body
		}
		switch tt {
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(name) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(name) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			trimmed := bytes.TrimSpace(tokenizer.Text())
			if len(trimmed) > 0 {
				text.Write(trimmed)
				text.WriteRune('\n')
			}
		}
	}
	return strings.TrimSpace(text.String())
}

func isSkippedTag(name []byte) bool {
	return bytes.Equal(name, []byte("script")) || bytes.Equal(name, []byte("style"))
}
