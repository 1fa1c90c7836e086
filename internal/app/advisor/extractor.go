package advisor

import (
	"regexp"
	"strings"
)

// CodeExtractor finds a course code in free text.
type CodeExtractor interface {
	Extract(text string) (code string, ok bool)
}

// courseCodePattern matches three letters followed by three digits as a whole word.
var courseCodePattern = regexp.MustCompile(`(?i)\b([a-z]{3}\d{3})\b`)

// PatternExtractor returns the first course-code shaped token, upper-cased.
type PatternExtractor struct {
	pattern *regexp.Regexp
}

// NewPatternExtractor creates an extractor for the default course code shape.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{pattern: courseCodePattern}
}

// Extract implements CodeExtractor.
func (p *PatternExtractor) Extract(text string) (string, bool) {
	match := p.pattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.ToUpper(match[1]), true
}
