package cli

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type comparisonKind uint8

const (
	compareIgnoreCase comparisonKind = iota
	compareExact
	compareCulture
)

// Comparison decides whether an input token spells one of a descriptor's
// aliases. The zero value is IgnoreCase.
type Comparison struct {
	kind comparisonKind
	tag  language.Tag
}

var (
	// Exact compares byte for byte.
	Exact = Comparison{kind: compareExact}
	// IgnoreCase compares after full Unicode case folding.
	IgnoreCase = Comparison{kind: compareIgnoreCase}
)

// CultureIgnoreCase compares after lowering both strings with the casing
// rules of tag, e.g. language.Turkish maps "I" to dotless "ı".
func CultureIgnoreCase(tag language.Tag) Comparison {
	return Comparison{kind: compareCulture, tag: tag}
}

// ParseComparison accepts "exact", "ignore_case" and "culture:<bcp47>".
func ParseComparison(s string) (Comparison, error) {
	switch s := strings.TrimSpace(s); {
	case s == "", s == "ignore_case":
		return IgnoreCase, nil
	case s == "exact":
		return Exact, nil
	case strings.HasPrefix(s, "culture:"):
		tag, err := language.Parse(strings.TrimPrefix(s, "culture:"))
		if err != nil {
			return Comparison{}, fmt.Errorf("comparison %q: %w", s, err)
		}
		return CultureIgnoreCase(tag), nil
	default:
		return Comparison{}, fmt.Errorf("unknown comparison %q", s)
	}
}

// Equal reports whether a and b are the same alias under c.
func (c Comparison) Equal(a, b string) bool {
	switch c.kind {
	case compareExact:
		return a == b
	case compareCulture:
		// Casers carry state; a fresh one per call keeps Equal safe for
		// concurrent use.
		return cases.Lower(c.tag).String(a) == cases.Lower(c.tag).String(b)
	default:
		if a == b {
			return true
		}
		return cases.Fold().String(a) == cases.Fold().String(b)
	}
}

func (c Comparison) String() string {
	switch c.kind {
	case compareExact:
		return "exact"
	case compareCulture:
		return "culture:" + c.tag.String()
	default:
		return "ignore_case"
	}
}
