package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

var slotRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Template is a prompt template over a closed set of named slots. Unknown
// slot references fail at construction time rather than at render time.
type Template struct {
	raw   string
	slots map[string]struct{}
}

// NewTemplate parses raw and validates that every {{slot}} it references is
// in the allowed set.
func NewTemplate(raw string, allowed ...string) (*Template, error) {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	slots := make(map[string]struct{})
	for _, m := range slotRe.FindAllStringSubmatch(raw, -1) {
		name := m[1]
		if _, ok := allowedSet[name]; !ok {
			return nil, fmt.Errorf("template references unknown slot %q", name)
		}
		slots[name] = struct{}{}
	}

	return &Template{raw: raw, slots: slots}, nil
}

// MustTemplate is NewTemplate for package-level template literals.
func MustTemplate(raw string, allowed ...string) *Template {
	t, err := NewTemplate(raw, allowed...)
	if err != nil {
		panic(err)
	}
	return t
}

// Render substitutes the slot values. Every slot the template references
// must be present in values.
func (t *Template) Render(values map[string]string) (string, error) {
	for name := range t.slots {
		if _, ok := values[name]; !ok {
			return "", fmt.Errorf("missing value for slot %q", name)
		}
	}

	out := slotRe.ReplaceAllStringFunc(t.raw, func(match string) string {
		name := strings.Trim(match, "{}")
		return values[name]
	})
	return out, nil
}
