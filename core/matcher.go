package core

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dynosim/dynosim/types"
)

// A MatcherRule recognizes one textual condition pattern and evaluates it
// against items. Rules are tried in order and the first one whose Applies
// accepts the condition text decides the whole query; there is deliberately
// no expression parser behind this.
type MatcherRule struct {
	Name string

	// Applies reports whether the rule recognizes the condition text.
	Applies func(conditionText, partitionKey string) bool

	// Match evaluates the rule against a single item.
	Match func(item types.Item, conditionText string) bool

	// SingleItem stops iteration after the first match. Partition-key
	// lookups are "efficient" by simulated convention.
	SingleItem bool
}

var (
	ageConditionRE  = regexp.MustCompile(`age\s*(>=|<=|>|<|=)\s*(-?\d+(?:\.\d+)?)`)
	cityConditionRE = regexp.MustCompile(`city\s*=\s*'([^']*)'`)
)

// QueryRules is the ordered rule list applied by Table.Query. Age and city
// conditions take precedence over partition-key presence, matching the shape
// of condition texts the demo front ends generate.
var QueryRules = []MatcherRule{
	{
		Name: "age-comparison",
		Applies: func(cond, _ string) bool {
			return ageConditionRE.MatchString(cond)
		},
		Match: matchAgeCondition,
	},
	{
		Name: "city-equality",
		Applies: func(cond, _ string) bool {
			return cityConditionRE.MatchString(cond)
		},
		Match: matchCityCondition,
	},
	{
		Name: "partition-key-lookup",
		Applies: func(cond, partitionKey string) bool {
			return partitionKey != "" && strings.Contains(cond, partitionKey)
		},
		Match: func(types.Item, string) bool {
			return true
		},
		SingleItem: true,
	},
}

// selectRule returns the first rule recognizing the condition text, or nil
// when no rule applies.
func selectRule(conditionText, partitionKey string) *MatcherRule {
	for i := range QueryRules {
		if QueryRules[i].Applies(conditionText, partitionKey) {
			return &QueryRules[i]
		}
	}

	return nil
}

func matchAgeCondition(item types.Item, conditionText string) bool {
	groups := ageConditionRE.FindStringSubmatch(conditionText)
	if groups == nil {
		return false
	}

	threshold, err := strconv.ParseFloat(groups[2], 64)
	if err != nil {
		return false
	}

	age, ok := item.Number("age")
	if !ok {
		return false
	}

	switch groups[1] {
	case ">":
		return age > threshold
	case ">=":
		return age >= threshold
	case "<":
		return age < threshold
	case "<=":
		return age <= threshold
	case "=":
		return age == threshold
	}

	return false
}

func matchCityCondition(item types.Item, conditionText string) bool {
	groups := cityConditionRE.FindStringSubmatch(conditionText)
	if groups == nil {
		return false
	}

	city, ok := item.String("city")

	return ok && city == groups[1]
}

// FilterAttributes extracts the attribute names an expression filters on.
// Only the attributes the advisory analyzers know how to reason about are
// recognized.
func FilterAttributes(expression string) []string {
	attrs := []string{}

	if strings.Contains(expression, "age") {
		attrs = append(attrs, "age")
	}

	if strings.Contains(expression, "city") {
		attrs = append(attrs, "city")
	}

	return attrs
}
