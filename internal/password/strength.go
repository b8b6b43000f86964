// Package password scores candidate passwords against a fixed list of
// strength requirements.
//
// The evaluator is pure: the same input always yields the same checklist,
// score and tier. It is used to drive the live strength meter of the reset
// screen and, when enabled, the strong_password validation rule.
package password

import (
	"regexp"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// Requirement is one line of the strength checklist.
type Requirement struct {
	Met  bool   `json:"met"`
	Text string `json:"text"`
}

// Tier is the strength classification of a score.
type Tier string

const (
	TierEmpty  Tier = "Enter a password"
	TierWeak   Tier = "Weak"
	TierMedium Tier = "Medium"
	TierStrong Tier = "Strong"
)

// Label returns the text shown under the strength meter.
func (t Tier) Label() string {
	if t == TierEmpty {
		return string(t)
	}
	return string(t) + " password"
}

// Strength is the full evaluation of one password.
type Strength struct {
	Requirements []Requirement `json:"requirements"`
	Score        int           `json:"score"`
	Tier         Tier          `json:"tier"`
}

// rule pairs a predicate with its checklist text.
type rule struct {
	pattern *regexp.Regexp
	text    string
}

// rules are evaluated in display order.
var rules = []rule{
	{regexp.MustCompile(`.{8,}`), "At least 8 characters"},
	{regexp.MustCompile(`[0-9]`), "At least 1 number"},
	{regexp.MustCompile(`[A-Z]`), "At least 1 uppercase letter"},
	{regexp.MustCompile(`[^A-Za-z0-9]`), "At least 1 special character"},
}

// CheckStrength returns the four requirements, in fixed order, with whether
// pass satisfies each one.
func CheckStrength(pass string) []Requirement {
	reqs := make([]Requirement, len(rules))
	for i, r := range rules {
		reqs[i] = Requirement{Met: r.pattern.MatchString(pass), Text: r.text}
	}
	return reqs
}

// Score counts the satisfied requirements.
func Score(reqs []Requirement) int {
	score := 0
	for _, req := range reqs {
		if req.Met {
			score++
		}
	}
	return score
}

// TierFor maps a score to its tier.
func TierFor(score int) Tier {
	switch {
	case score <= 0:
		return TierEmpty
	case score <= 2:
		return TierWeak
	case score == 3:
		return TierMedium
	default:
		return TierStrong
	}
}

// Evaluate runs the checklist and derives score and tier.
func Evaluate(pass string) Strength {
	reqs := CheckStrength(pass)
	score := Score(reqs)
	return Strength{
		Requirements: reqs,
		Score:        score,
		Tier:         TierFor(score),
	}
}

// Percent is the meter fill for the score, 0 to 100.
func (s Strength) Percent() int {
	return s.Score * 100 / constants.StrengthRequirementCount
}

// meterClasses are the meter colours indexed by score.
var meterClasses = [...]string{
	"bg-border",
	"bg-red-500",
	"bg-orange-500",
	"bg-amber-500",
	"bg-emerald-500",
}

// MeterClass returns the colour class of the strength meter for a score.
// Out-of-range scores are clamped.
func MeterClass(score int) string {
	if score < 0 {
		score = 0
	}
	if score >= len(meterClasses) {
		score = len(meterClasses) - 1
	}
	return meterClasses[score]
}
