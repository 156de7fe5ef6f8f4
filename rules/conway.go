package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRule is returned for rule strings that are not in B/S notation.
var ErrInvalidRule = errors.New("rules: invalid rule string")

// Rule is a Life-like rule: which neighbour counts give birth to a dead cell
// and which keep a live cell alive.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23, tabulated from ApplyConwayRules.
var Conway = tabulate(ApplyConwayRules)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// tabulate turns a closed-form rule into birth and survival tables.
func tabulate(next func(neighbors int, alive bool) bool) Rule {
	var rule Rule
	for n := range rule.Birth {
		rule.Birth[n] = next(n, false)
		rule.Survive[n] = next(n, true)
	}
	return rule
}

// Next returns the next state of a cell with the given live neighbour count.
func (r Rule) Next(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	writeCounts(&sb, r.Birth)
	sb.WriteString("/S")
	writeCounts(&sb, r.Survive)
	return sb.String()
}

func writeCounts(sb *strings.Builder, counts [9]bool) {
	for n, on := range counts {
		if on {
			sb.WriteByte(byte('0' + n))
		}
	}
}

// ParseRule reads a rule such as "B3/S23". Either half may be empty ("B/S23").
func ParseRule(s string) (Rule, error) {
	var rule Rule

	birth, survive, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "/")
	if !ok || !strings.HasPrefix(birth, "B") || !strings.HasPrefix(survive, "S") {
		return rule, errors.Wrapf(ErrInvalidRule, "[ParseRule] %q: want B<digits>/S<digits>", s)
	}
	if err := parseCounts(birth[1:], &rule.Birth); err != nil {
		return rule, errors.Wrapf(err, "[ParseRule] %q birth", s)
	}
	if err := parseCounts(survive[1:], &rule.Survive); err != nil {
		return rule, errors.Wrapf(err, "[ParseRule] %q survival", s)
	}
	return rule, nil
}

// MustParseRule is ParseRule for rule strings known at compile time.
func MustParseRule(s string) Rule {
	rule, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return rule
}

func parseCounts(digits string, counts *[9]bool) error {
	for _, r := range digits {
		if r < '0' || r > '8' {
			return errors.Wrapf(ErrInvalidRule, "neighbour count %q out of range", r)
		}
		counts[r-'0'] = true
	}
	return nil
}
