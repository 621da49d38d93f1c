// Package extraction provides pure parsers that map free-text user replies
// to structured profile fields. A failed parse is a normal outcome reported
// through an ok flag, never an error: the dialogue layer re-prompts on a
// miss instead of failing the turn.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// wordPattern matches alphabetic runs of length >= 3, the minimum token
// length that survives interest extraction.
var wordPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// interestStoplist removes filler words that show up constantly in replies
// like "I'm just really starting my journey into franchising" and would
// otherwise pollute the keyword match.
var interestStoplist = map[string]bool{
	"just":        true,
	"really":      true,
	"little":      true,
	"starting":    true,
	"journey":     true,
	"into":        true,
	"franchising": true,
}

// Interests tokenizes a reply into lowercase keywords. Returns false only
// when no token survives the stoplist; the caller should re-prompt with
// example categories in that case.
func Interests(text string) ([]string, bool) {
	var keywords []string
	for _, token := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if interestStoplist[token] {
			continue
		}
		keywords = append(keywords, token)
	}
	if len(keywords) == 0 {
		return nil, false
	}
	return keywords, true
}

// capitalPattern matches a monetary numeral with optional dollar sign and
// thousands separators ("$50,000", "about 50000").
var capitalPattern = regexp.MustCompile(`\$?(\d[\d,]*)`)

// Capital extracts a liquid-capital figure in whole dollars. Returns false
// when the reply contains no numeral.
func Capital(text string) (int, bool) {
	m := capitalPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}
