package extraction

import (
	"regexp"
	"strings"
)

// namePattern captures the token following a self-introduction. Covers
// "I'm Dana", "I am Dana", and "my name is Dana".
var namePattern = regexp.MustCompile(`(?i)\b(?:i'm|i am|my name is)\s+([a-zA-Z]{2,})`)

// notNames filters words that follow "I'm" without being a name, so that
// "I'm interested in coffee" or "I'm really nervous" never captures one.
var notNames = map[string]bool{
	"just":       true,
	"really":     true,
	"very":       true,
	"not":        true,
	"interested": true,
	"looking":    true,
	"thinking":   true,
	"excited":    true,
	"scared":     true,
	"nervous":    true,
	"worried":    true,
	"new":        true,
	"sure":       true,
	"here":       true,
	"so":         true,
	"too":        true,
	"still":      true,
	"kind":       true,
	"quite":      true,
	"pretty":     true,
	"honestly":   true,
	"bit":        true,
	"all":        true,
}

// Name scans a reply for a self-introduction and returns the capitalized
// first name. Returns false when no introduction pattern appears.
func Name(text string) (string, bool) {
	m := namePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := strings.ToLower(m[1])
	if notNames[name] {
		return "", false
	}
	return strings.ToUpper(name[:1]) + name[1:], true
}
