package csvimport

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the type a cell must parse as
type Kind string

const (
	KindText    Kind = "text"
	KindInt     Kind = "integer"
	KindDecimal Kind = "decimal"
	KindUUID    Kind = "uuid"
)

// Rule constrains one column
type Rule struct {
	Column    string
	Kind      Kind
	Required  bool
	MaxLength int
	Min       *decimal.Decimal
	Max       *decimal.Decimal
}

// RuleBuilder builds a Rule fluently
type RuleBuilder struct {
	rule Rule
}

// Column starts a text rule for name
func Column(name string) *RuleBuilder {
	return &RuleBuilder{rule: Rule{Column: name, Kind: KindText}}
}

func (b *RuleBuilder) Required() *RuleBuilder {
	b.rule.Required = true
	return b
}

func (b *RuleBuilder) Int() *RuleBuilder {
	b.rule.Kind = KindInt
	return b
}

func (b *RuleBuilder) Decimal() *RuleBuilder {
	b.rule.Kind = KindDecimal
	return b
}

func (b *RuleBuilder) UUID() *RuleBuilder {
	b.rule.Kind = KindUUID
	return b
}

// MaxLength limits text length in runes
func (b *RuleBuilder) MaxLength(n int) *RuleBuilder {
	b.rule.MaxLength = n
	return b
}

// Range bounds numeric cells, inclusive
func (b *RuleBuilder) Range(min, max decimal.Decimal) *RuleBuilder {
	b.rule.Min, b.rule.Max = &min, &max
	return b
}

// Min bounds numeric cells from below, inclusive
func (b *RuleBuilder) Min(min decimal.Decimal) *RuleBuilder {
	b.rule.Min = &min
	return b
}

func (b *RuleBuilder) Build() Rule {
	return b.rule
}

// Check validates row against rules and records every failure in errs.
// It reports whether the row passed.
func Check(row *Row, rules []Rule, errs *Errors) bool {
	ok := true
	for _, r := range rules {
		if err := r.check(row.Get(r.Column)); err != nil {
			err.Row = row.Line
			errs.Add(*err)
			ok = false
		}
	}
	return ok
}

func (r Rule) check(value string) *RowError {
	fail := func(code, msg string) *RowError {
		return &RowError{Column: r.Column, Code: code, Message: msg, Value: value}
	}

	if value == "" {
		if r.Required {
			return fail(CodeRequired, "This field is required.")
		}
		return nil
	}

	if r.MaxLength > 0 && utf8.RuneCountInString(value) > r.MaxLength {
		return fail(CodeLength, fmt.Sprintf("Ensure this field has no more than %d characters.", r.MaxLength))
	}

	var n decimal.Decimal
	switch r.Kind {
	case KindInt:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fail(CodeType, "A valid integer is required.")
		}
		n = decimal.NewFromInt(i)
	case KindDecimal:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return fail(CodeType, "A valid number is required.")
		}
		n = d
	case KindUUID:
		if _, err := uuid.Parse(value); err != nil {
			return fail(CodeType, "Must be a valid UUID.")
		}
		return nil
	default:
		return nil
	}

	if r.Min != nil && n.LessThan(*r.Min) {
		return fail(CodeRange, fmt.Sprintf("Ensure this value is greater than or equal to %s.", r.Min))
	}
	if r.Max != nil && n.GreaterThan(*r.Max) {
		return fail(CodeRange, fmt.Sprintf("Ensure this value is less than or equal to %s.", r.Max))
	}
	return nil
}
