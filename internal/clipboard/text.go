package clipboard

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("system clipboard unavailable")

// ReadText returns the plain text another program left on the system
// clipboard, with markup removed.
func ReadText() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}
	raw, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read system clipboard: %w", err)
	}
	return PlainText(raw), nil
}

// PlainText strips HTML markup, normalises line endings and drops control
// characters other than newline and tab.
func PlainText(raw string) string {
	if isHTML(raw) {
		raw = stripTags(raw)
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	raw = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r >= ' ' {
			return r
		}
		return -1
	}, raw)
	return strings.TrimSpace(raw)
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") ||
			strings.Contains(t, "<div") || strings.Contains(t, "<p"))
}

func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}
