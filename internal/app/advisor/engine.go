// Package advisor implements the rule-based academic advisor: an ordered list
// of intent rules evaluated against a per-question snapshot of the student's
// standing.
package advisor

import "strings"

// Intent names the rule that produced a reply.
type Intent string

const (
	IntentCourseEligibility  Intent = "course_eligibility"
	IntentImprovePerformance Intent = "improve_performance"
	IntentFallback           Intent = "fallback"
)

// FallbackMessage is returned when no rule matches.
const FallbackMessage = "I am an academic advisor AI. I can answer questions about your course eligibility (e.g., 'Why can't I take CSC401?') or your academic performance."

// Question is the normalised input passed to rules.
type Question struct {
	Raw   string
	Lower string
	// CourseCode is the first course code found in the text, if any.
	CourseCode string
}

// Contains reports whether the lower-cased question contains any of the cues.
func (q Question) Contains(cues ...string) bool {
	for _, cue := range cues {
		if strings.Contains(q.Lower, cue) {
			return true
		}
	}
	return false
}

// Rule is one (predicate, handler) pair.
type Rule struct {
	Intent  Intent
	Matches func(q Question) bool
	Respond func(q Question, snap *Snapshot) string
}

// Reply is the engine's answer.
type Reply struct {
	Intent     Intent `json:"intent"`
	Text       string `json:"response"`
	CourseCode string `json:"courseCode,omitempty"`
}

// Engine evaluates rules in order; the first match wins.
type Engine struct {
	rules     []Rule
	extractor CodeExtractor
}

// NewEngine creates an engine with the default rule set and extractor.
func NewEngine() *Engine {
	return NewEngineWith(NewPatternExtractor(), DefaultRules()...)
}

// NewEngineWith creates an engine with an explicit extractor and rule order.
func NewEngineWith(extractor CodeExtractor, rules ...Rule) *Engine {
	return &Engine{rules: rules, extractor: extractor}
}

// Answer classifies the question and renders a reply from the snapshot.
func (e *Engine) Answer(text string, snap *Snapshot) Reply {
	if snap == nil {
		snap = &Snapshot{}
	}

	q := Question{Raw: text, Lower: strings.ToLower(text)}
	if code, ok := e.extractor.Extract(text); ok {
		q.CourseCode = code
	}

	for _, rule := range e.rules {
		if rule.Matches(q) {
			return Reply{Intent: rule.Intent, Text: rule.Respond(q, snap), CourseCode: q.CourseCode}
		}
	}

	return Reply{Intent: IntentFallback, Text: FallbackMessage}
}
