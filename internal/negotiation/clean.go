package negotiation

import (
	"regexp"
	"strings"
)

var thinkingRe = regexp.MustCompile(`(?s)<thinking>.*?</thinking>`)

// Speaker labels and scaffolding the model sometimes prepends to its reply.
var replyPrefixes = []string{"negotiating", "response:", "alex:", "state:"}

// CleanReply normalizes a raw model completion: strips thinking blocks and
// speaker prefixes, and collapses a fully duplicated paragraph block (a
// known failure mode where the model echoes its own answer twice).
func CleanReply(text string) string {
	text = strings.TrimSpace(thinkingRe.ReplaceAllString(text, ""))

	lower := strings.ToLower(text)
	for _, prefix := range replyPrefixes {
		if strings.HasPrefix(lower, prefix) {
			text = strings.TrimLeft(text[len(prefix):], " :")
			break
		}
	}

	paragraphs := strings.Split(text, "\n\n")
	if n := len(paragraphs); n > 1 && n%2 == 0 {
		mid := n / 2
		if equalSlices(paragraphs[:mid], paragraphs[mid:]) {
			return strings.TrimSpace(strings.Join(paragraphs[:mid], "\n\n"))
		}
	}

	return strings.TrimSpace(text)
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
