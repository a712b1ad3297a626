package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the largest neighbor count a cell can have.
const MaxNeighbors = 8

// transition holds what happens to a cell with a given neighbor count.
type transition struct {
	survives bool
	born     bool
}

/*
Rule maps a neighbor count (0-8) to whether a living cell survives and whether
a dead cell is born.

The zero value is the empty rule; use Normal for Conway's B3/S23.
*/
type Rule struct {
	table [MaxNeighbors + 1]transition
}

// Normal returns Conway's rule: survive on 2 or 3, born on exactly 3.
func Normal() Rule {
	var r Rule
	r.SetSurvival(2, true)
	r.SetSurvival(3, true)
	r.SetBirth(3, true)
	return r
}

// Empty returns a rule where nothing survives and nothing is born.
func Empty() Rule {
	return Rule{}
}

// Survival reports whether a living cell with n neighbors survives.
// n must be in 0..8.
func (r Rule) Survival(n int) bool {
	return r.table[n].survives
}

// Birth reports whether a dead cell with n neighbors comes alive.
// n must be in 0..8.
func (r Rule) Birth(n int) bool {
	return r.table[n].born
}

// SetSurvival sets the survival bit for n neighbors.
func (r *Rule) SetSurvival(n int, survives bool) {
	r.table[n].survives = survives
}

// SetBirth sets the birth bit for n neighbors.
func (r *Rule) SetBirth(n int, born bool) {
	r.table[n].born = born
}

// Next returns the next state of a cell given its current state and neighbor count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.table[neighbors].survives
	}
	return r.table[neighbors].born
}

// DisplaySurvival returns the survival counts as ascending digits, e.g. "23".
func (r Rule) DisplaySurvival() string {
	var sb strings.Builder
	for n, t := range r.table {
		if t.survives {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// DisplayBirth returns the birth counts as ascending digits, e.g. "3".
func (r Rule) DisplayBirth() string {
	var sb strings.Builder
	for n, t := range r.table {
		if t.born {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + r.DisplayBirth() + "/S" + r.DisplaySurvival()
}

// ParseRule reads the survival/birth digit grammar used by Life 1.05 `#R`
// lines and RLE `#r` lines: survival digits, a slash, then birth digits.
func ParseRule(s string) (Rule, error) {
	rule := Empty()
	survival, birth, _ := strings.Cut(strings.TrimSpace(s), "/")

	if err := setDigits(survival, rule.SetSurvival); err != nil {
		return rule, errors.Wrapf(err, "[ParseRule] failed to read survival counts: %+v", s)
	}
	if err := setDigits(birth, rule.SetBirth); err != nil {
		return rule, errors.Wrapf(err, "[ParseRule] failed to read birth counts: %+v", s)
	}

	return rule, nil
}

// ParseRuleNotation accepts either the B/S notation ("B3/S23", "S23/B3") or
// the plain survival/birth digit grammar accepted by ParseRule.
func ParseRuleNotation(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if s == "" || !strings.ContainsAny(s[:1], "BbSs") {
		return ParseRule(s)
	}

	rule := Empty()
	for _, part := range strings.Split(s, "/") {
		if part == "" {
			continue
		}
		var err error
		switch part[0] {
		case 'B', 'b':
			err = setDigits(part[1:], rule.SetBirth)
		case 'S', 's':
			err = setDigits(part[1:], rule.SetSurvival)
		default:
			err = errors.Errorf("unexpected rule section %q", part)
		}
		if err != nil {
			return rule, errors.Wrapf(err, "[ParseRuleNotation] failed to parse rule: %+v", s)
		}
	}

	return rule, nil
}

func setDigits(digits string, set func(n int, on bool)) error {
	for _, ch := range digits {
		if ch < '0' || ch > '0'+MaxNeighbors {
			return errors.Errorf("unexpected character %q, expected a digit from 0 to %d", ch, MaxNeighbors)
		}
		set(int(ch-'0'), true)
	}
	return nil
}
