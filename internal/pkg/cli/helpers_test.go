package cli

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type testKey int

const (
	One testKey = iota
	Two
	Three
	Four
)

func (k testKey) String() string {
	names := [...]string{"One", "Two", "Three", "Four"}
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("testKey(%d)", int(k))
	}
	return names[k]
}

// spellings returns the usual family of aliases for k: "One", "one",
// "-One", "-one", "--One", "--one".
func spellings(k testKey) []string {
	s := k.String()
	l := strings.ToLower(s)
	return []string{s, l, "-" + s, "-" + l, "--" + s, "--" + l}
}

type registration struct {
	key      testKey
	priority int
}

var (
	control         = []registration{{One, 0}, {Two, 1}, {Three, 2}, {Four, 3}}
	enumUnordered   = []registration{{Two, 0}, {Four, 1}, {One, 2}, {Three, 3}}
	reversed        = []registration{{One, 3}, {Two, 2}, {Three, 1}, {Four, 0}}
	equalPriorities = []registration{{One, 0}, {Two, 0}, {Three, 0}, {Four, 0}}
)

var fixtures = []struct {
	name  string
	regs  []registration
	order []testKey
}{
	{"control", control, []testKey{One, Two, Three, Four}},
	{"enum unordered", enumUnordered, []testKey{Two, Four, One, Three}},
	{"reversed priorities", reversed, []testKey{Four, Three, Two, One}},
	{"equal priorities", equalPriorities, []testKey{One, Two, Three, Four}},
}

func descriptorsFor(regs []registration) []Descriptor[testKey] {
	out := make([]Descriptor[testKey], 0, len(regs))
	for _, r := range regs {
		out = append(out, NewDescriptor(r.key, spellings(r.key), WithPriority(r.priority)))
	}
	return out
}

func namesOf(regs []registration) []string {
	out := make([]string, 0, len(regs))
	for _, r := range regs {
		out = append(out, strings.ToLower(r.key.String()))
	}
	return out
}

type occurrence struct {
	Key    testKey
	Values []string
}

func occurrences(rs []Result[testKey]) []occurrence {
	out := make([]occurrence, 0, len(rs))
	for _, r := range rs {
		out = append(out, occurrence{Key: r.Key, Values: r.Values})
	}
	return out
}

func diffOccurrences(want []occurrence, got []Result[testKey]) string {
	return cmp.Diff(want, occurrences(got), cmpopts.EquateEmpty())
}
