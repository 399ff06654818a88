package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/easyfocus/internal/model"
)

// FilterOp represents a comparison operator.
type FilterOp string

const (
	FilterOpEqual     FilterOp = "="  // Exact match
	FilterOpNotEqual  FilterOp = "!=" // Not equal
	FilterOpContains  FilterOp = "~"  // Contains substring
	FilterOpRegex     FilterOp = "~=" // Regex match
	FilterOpGreater   FilterOp = ">"  // Greater than
	FilterOpLess      FilterOp = "<"  // Less than
	FilterOpGreaterEq FilterOp = ">=" // Greater than or equal
	FilterOpLessEq    FilterOp = "<=" // Less than or equal
)

// FilterCondition represents a single filter condition.
type FilterCondition struct {
	Field    string   // Field name: app, name, label, id, focused, width, height
	Operator FilterOp // Comparison operator
	Value    string   // Value to compare against

	regex   *regexp.Regexp
	intVal  int64
	boolVal bool
}

// FilterExpr represents a compound filter expression.
// Multiple conditions are ANDed together.
type FilterExpr struct {
	Conditions []FilterCondition
}

// ParseFilter parses a filter expression string into a FilterExpr.
// Format: "field=value,field2~value2,field3>value3"
// Multiple conditions are comma-separated and ANDed together.
//
// Supported fields: app, name, label, id, focused, width, height
// Supported operators: = (equal), != (not equal), ~ (contains), ~= (regex), >, <, >=, <=
//
// Examples:
//   - "app=foot" - exact app id match
//   - "name~readme" - title contains "readme"
//   - "app~=^(firefox|chromium)$" - app id matches regex
//   - "focused=false,width>=800" - unfocused windows at least 800px wide
func ParseFilter(expr string) (*FilterExpr, error) {
	if expr == "" {
		return &FilterExpr{}, nil
	}

	filter := &FilterExpr{
		Conditions: make([]FilterCondition, 0),
	}

	for part := range strings.SplitSeq(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		cond, err := parseCondition(part)
		if err != nil {
			return nil, err
		}
		filter.Conditions = append(filter.Conditions, cond)
	}

	return filter, nil
}

// parseCondition parses a single condition like "app=foot" or "name~vim".
func parseCondition(s string) (FilterCondition, error) {
	// Longest operators first so "!=" is not read as "=".
	operators := []FilterOp{
		FilterOpNotEqual,
		FilterOpGreaterEq,
		FilterOpLessEq,
		FilterOpRegex,
		FilterOpEqual,
		FilterOpContains,
		FilterOpGreater,
		FilterOpLess,
	}

	// The leftmost operator wins so values may contain operator characters.
	best, bestIdx := FilterOp(""), -1
	for _, op := range operators {
		idx := strings.Index(s, string(op))
		if idx > 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = op, idx
		}
	}

	if bestIdx < 0 {
		return FilterCondition{}, fmt.Errorf("invalid filter condition: %s (missing operator)", s)
	}

	cond := FilterCondition{
		Field:    strings.ToLower(strings.TrimSpace(s[:bestIdx])),
		Operator: best,
		Value:    strings.TrimSpace(s[bestIdx+len(best):]),
	}
	if err := cond.init(); err != nil {
		return FilterCondition{}, err
	}
	return cond, nil
}

// init pre-parses and validates the condition value.
func (c *FilterCondition) init() error {
	switch c.Field {
	case "app", "app_id", "class":
		c.Field = "app"
	case "name", "title":
		c.Field = "name"
	case "label":
	case "id", "con_id", "width", "height":
		if c.Field == "con_id" {
			c.Field = "id"
		}
		if c.Operator == FilterOpContains || c.Operator == FilterOpRegex {
			return fmt.Errorf("operator %s not supported for numeric field %s", c.Operator, c.Field)
		}
		v, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %s", c.Field, c.Value)
		}
		c.intVal = v
	case "focused":
		c.boolVal = parseBool(c.Value)
	default:
		return fmt.Errorf("unknown filter field: %s", c.Field)
	}

	if c.Operator == FilterOpRegex {
		re, err := regexp.Compile(c.Value)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		c.regex = re
	}

	return nil
}

// parseBool parses various boolean representations.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "y", "t":
		return true
	default:
		return false
	}
}

// Match tests if a hint matches the filter expression.
// All conditions must match (AND logic).
func (f *FilterExpr) Match(h model.Hint) bool {
	for _, cond := range f.Conditions {
		if !cond.Match(h) {
			return false
		}
	}
	return true
}

// Match tests if a hint matches this single condition.
func (c *FilterCondition) Match(h model.Hint) bool {
	switch c.Field {
	case "app":
		return c.matchString(h.Window.AppID)
	case "name":
		return c.matchString(h.Window.Name)
	case "label":
		return c.matchString(h.Label)
	case "id":
		return c.matchInt(h.Window.ID)
	case "width":
		return c.matchInt(int64(h.Window.Rect.Width))
	case "height":
		return c.matchInt(int64(h.Window.Rect.Height))
	case "focused":
		return c.matchBool(h.Window.Focused)
	default:
		return false
	}
}

func (c *FilterCondition) matchString(fieldValue string) bool {
	switch c.Operator {
	case FilterOpEqual:
		return fieldValue == c.Value
	case FilterOpNotEqual:
		return fieldValue != c.Value
	case FilterOpContains:
		return strings.Contains(strings.ToLower(fieldValue), strings.ToLower(c.Value))
	case FilterOpRegex:
		return c.regex != nil && c.regex.MatchString(fieldValue)
	default:
		return false
	}
}

func (c *FilterCondition) matchInt(fieldValue int64) bool {
	switch c.Operator {
	case FilterOpEqual:
		return fieldValue == c.intVal
	case FilterOpNotEqual:
		return fieldValue != c.intVal
	case FilterOpGreater:
		return fieldValue > c.intVal
	case FilterOpLess:
		return fieldValue < c.intVal
	case FilterOpGreaterEq:
		return fieldValue >= c.intVal
	case FilterOpLessEq:
		return fieldValue <= c.intVal
	default:
		return false
	}
}

func (c *FilterCondition) matchBool(fieldValue bool) bool {
	switch c.Operator {
	case FilterOpEqual:
		return fieldValue == c.boolVal
	case FilterOpNotEqual:
		return fieldValue != c.boolVal
	default:
		return false
	}
}

// FilterHints returns the hints matching expr. Labels are left untouched so
// the survivors still carry the label the overlay would show.
func FilterHints(hints []model.Hint, expr *FilterExpr) []model.Hint {
	if expr == nil || len(expr.Conditions) == 0 {
		return hints
	}

	result := make([]model.Hint, 0, len(hints))
	for _, h := range hints {
		if expr.Match(h) {
			result = append(result, h)
		}
	}
	return result
}
