package grammar

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/automoto/parkour-gen/rng"
)

// ErrUnknownRule is returned when a rule name is not in the set.
var ErrUnknownRule = errors.New("unknown grammar rule")

// DefaultFollowUp is used for categories without follow-up options.
const DefaultFollowUp = "BesideRule"

// RuleSet is the production grammar: named rules expanding to candidate
// categories, and the follow-up rules each kind may lead to. Rules reference
// each other through Next, so the expansion graph may contain cycles.
type RuleSet struct {
	Rules map[string][]Category `json:"rules"`
	Next  map[Kind][]string     `json:"next"`
}

func all(k Kind, dirs ...Direction) []Category {
	out := make([]Category, len(dirs))
	for i, d := range dirs {
		out[i] = Category{Kind: k, Dir: d}
	}
	return out
}

// DefaultRuleSet returns the stock rooftop grammar.
func DefaultRuleSet() RuleSet {
	start := make([]Category, 0, 13)
	for _, d := range []Direction{Forward, Left, Right} {
		start = append(start,
			Category{SmallJump, d}, Category{Beside, d}, Category{Above, d}, Category{Below, d})
	}
	start = append(start, Category{VeryHigh, Forward})

	above := make([]Category, 0, 6)
	for _, d := range []Direction{Forward, Left, Right} {
		above = append(above, Category{Above, d}, Category{SmallJump, d})
	}

	return RuleSet{
		Rules: map[string][]Category{
			"StartRule":     start,
			"BesideRule":    all(Beside, Forward, Left, Right),
			"AboveRule":     above,
			"BelowRule":     all(Below, Forward, Left, Right),
			"FarRule":       all(LongJump, Forward, Left, Right),
			"SmallJumpRule": all(SmallJump, Forward, Left, Right),
			"VeryHighRule":  {{VeryHigh, Forward}},
			"VeryLowRule":   {{VeryLow, Forward}},
		},
		Next: map[Kind][]string{
			Beside:    {"BesideRule", "SmallJumpRule", "AboveRule", "BelowRule", "FarRule", "VeryHighRule", "VeryLowRule"},
			LongJump:  {"SmallJumpRule", "AboveRule", "BelowRule", "BesideRule"},
			Above:     {"FarRule", "SmallJumpRule", "BesideRule"},
			Below:     {"FarRule", "BesideRule", "SmallJumpRule"},
			SmallJump: {"VeryHighRule", "VeryLowRule", "BesideRule", "FarRule", "AboveRule", "BelowRule"},
			VeryHigh:  {"BesideRule"},
			VeryLow:   {"BesideRule"},
		},
	}
}

// ParseRuleSet decodes a JSON rule set and validates it.
func ParseRuleSet(data []byte) (RuleSet, error) {
	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("parse rule set: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

// Names returns the rule names in sorted order.
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs.Rules))
	for n := range rs.Rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Rule returns the candidate categories for name.
func (rs RuleSet) Rule(name string) ([]Category, error) {
	cats, ok := rs.Rules[name]
	if !ok {
		if s := rs.Suggest(name); s != "" {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownRule, name, s)
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	return cats, nil
}

// Suggest returns the closest known rule name within a small edit
// distance, or "" if nothing is close.
func (rs RuleSet) Suggest(name string) string {
	best, bestDist := "", -1
	for _, cand := range rs.Names() {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// PickNext chooses a follow-up rule for a placement of kind k.
func (rs RuleSet) PickNext(src rng.Source, k Kind) string {
	opts := rs.Next[k]
	if len(opts) == 0 {
		return DefaultFollowUp
	}
	return opts[rng.Pick(src, len(opts))]
}

// Validate checks that every rule has candidates and every follow-up names a
// known rule.
func (rs RuleSet) Validate() error {
	if len(rs.Rules) == 0 {
		return errors.New("rule set has no rules")
	}
	for _, name := range rs.Names() {
		if len(rs.Rules[name]) == 0 {
			return fmt.Errorf("rule %q has no expansions", name)
		}
	}
	kinds := make([]Kind, 0, len(rs.Next))
	for k := range rs.Next {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		for _, n := range rs.Next[k] {
			if _, err := rs.Rule(n); err != nil {
				return fmt.Errorf("follow-up for %s: %w", k, err)
			}
		}
	}
	if _, ok := rs.Rules[DefaultFollowUp]; !ok {
		for _, k := range []Kind{Beside, SmallJump, LongJump, Above, Below, VeryHigh, VeryLow} {
			if len(rs.Next[k]) == 0 {
				return fmt.Errorf("%s has no follow-ups and %w %q is missing", k, ErrUnknownRule, DefaultFollowUp)
			}
		}
	}
	return nil
}
