package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// strippedSelector matches the chrome elements removed before text
// extraction.
const strippedSelector = "script, style, nav, header, footer, aside, iframe"

var (
	whitespacePattern  = regexp.MustCompile(`\s+`)
	inlineSpacePattern = regexp.MustCompile(`[ \t]+`)
)

// cleanText returns the selection's visible text with chrome removed and
// all whitespace collapsed to single spaces. The selection is cloned
// first; the parsed document is never mutated.
func cleanText(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find(strippedSelector).Remove()
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(clone.Text(), " "))
}

// cleanLines is like cleanText but preserves line breaks so line-based
// scanning still sees the page's structure. Blank lines are dropped.
func cleanLines(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find(strippedSelector).Remove()

	var lines []string
	for _, line := range strings.Split(clone.Text(), "\n") {
		line = strings.TrimSpace(inlineSpacePattern.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
