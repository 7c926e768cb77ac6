package cli

import (
	"cmp"
	"slices"

	"github.com/kurzatem/argparser/internal/pkg/prioritized"
)

type config struct {
	prefixes   []string
	delimiters []string
	strict     bool
	known      keySet
}

// Option configures a Parser.
type Option func(*config)

// WithPrefixes sets the prefixes ("--", "-", "/") that mark a token as a
// command. When at least one prefix is configured, tokens without a prefix
// are always values.
func WithPrefixes(prefixes ...string) Option {
	return func(c *config) { c.prefixes = slices.Clone(prefixes) }
}

// WithDelimiters records the argument/value delimiters ("=", ":"). They are
// reported by Delimiters and IsConfigured; grouping does not split on them.
func WithDelimiters(delimiters ...string) Option {
	return func(c *config) { c.delimiters = slices.Clone(delimiters) }
}

// WithStrict makes Parse fail on tokens that name no registered argument
// instead of treating them as values.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// WithKeys declares the complete set of legal keys. Descriptors for any
// other key are rejected by New.
func WithKeys[K Key](keys ...K) Option {
	return func(c *config) { c.known = newKeySet(keys) }
}

// Parser holds a validated, priority-ordered set of descriptors. It is
// read-only after New and may be shared between goroutines.
type Parser[K Key] struct {
	config
	descriptors *prioritized.List[*Descriptor[K]]
	positional  []int

	// prefixes, longest first so that "--" is tried before "-"
	matchOrder []string
}

func byPriority[K Key](a, b *Descriptor[K]) int {
	return cmp.Compare(a.priority, b.priority)
}

// New validates descriptors and freezes them into a Parser. Keys must be
// unique, aliases must be non-empty and must not collide with the aliases of
// another descriptor, and declared positions must form the range 0..n-1.
// Descriptors are ordered by priority, ties keeping the order of the input;
// afterwards every stored priority equals the descriptor's rank.
func New[K Key](descriptors []Descriptor[K], opts ...Option) (*Parser[K], error) {
	p := &Parser[K]{descriptors: prioritized.New(byPriority[K])}
	for _, opt := range opts {
		opt(&p.config)
	}
	p.matchOrder = slices.Clone(p.prefixes)
	slices.SortStableFunc(p.matchOrder, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	accepted := make([]*Descriptor[K], 0, len(descriptors))
	var slots []*K
	for _, d := range descriptors {
		if err := p.validate(accepted, d); err != nil {
			return nil, err
		}

		if pos, ok := d.Position(); ok {
			if pos < 0 {
				return nil, &DescriptorError{Kind: ErrInvalidPosition, Key: d.key, Position: pos}
			}
			for pos >= len(slots) {
				slots = append(slots, nil)
			}
			if slots[pos] != nil && *slots[pos] != d.key {
				return nil, &DescriptorError{Kind: ErrPositionTaken, Key: d.key, Position: pos}
			}
			key := d.key
			slots[pos] = &key
		}

		c := d.clone()
		accepted = append(accepted, c)
		p.descriptors.InsertOrAppend(c)
	}

	for i, d := range p.descriptors.All() {
		d.priority = i
	}

	p.positional = make([]int, 0, len(slots))
	for pos, key := range slots {
		if key == nil {
			return nil, &DescriptorError{Kind: ErrPositionGap, Position: pos}
		}
		p.positional = append(p.positional, p.indexOf(*key))
	}
	return p, nil
}

func (p *Parser[K]) validate(accepted []*Descriptor[K], d Descriptor[K]) error {
	if p.known != nil && !p.known(d.key) {
		return &DescriptorError{Kind: ErrUnknownKey, Key: d.key}
	}
	for _, other := range accepted {
		if other.key == d.key {
			return &DescriptorError{Kind: ErrDuplicateKey, Key: d.key}
		}
	}
	for i, alias := range d.aliases {
		if alias == "" {
			return &DescriptorError{Kind: ErrEmptyAlias, Key: d.key}
		}
		if slices.Contains(d.aliases[:i], alias) {
			return &DescriptorError{Kind: ErrDuplicateAlias, Key: d.key, Alias: alias}
		}
	}
	// A token matching aliases of two descriptors would be ambiguous, so
	// either side's comparison is enough to call it a collision.
	for _, other := range accepted {
		for _, alias := range d.aliases {
			for _, taken := range other.aliases {
				if d.comparison.Equal(alias, taken) || other.comparison.Equal(alias, taken) {
					return &DescriptorError{Kind: ErrDuplicateAlias, Key: d.key, Alias: alias}
				}
			}
		}
	}
	return nil
}

func (p *Parser[K]) indexOf(key K) int {
	for i, d := range p.descriptors.All() {
		if d.key == key {
			return i
		}
	}
	return -1
}

// Descriptors returns the registered descriptors in priority order.
func (p *Parser[K]) Descriptors() []Descriptor[K] {
	out := make([]Descriptor[K], 0, p.descriptors.Len())
	for _, d := range p.descriptors.All() {
		out = append(out, *d.clone())
	}
	return out
}

// Descriptor returns the descriptor registered for key.
func (p *Parser[K]) Descriptor(key K) (Descriptor[K], bool) {
	i := p.indexOf(key)
	if i < 0 {
		return Descriptor[K]{}, false
	}
	return *p.descriptors.At(i).clone(), true
}

// Positional returns, for every positional slot in order, the index of its
// descriptor in Descriptors.
func (p *Parser[K]) Positional() []int { return slices.Clone(p.positional) }

func (p *Parser[K]) Prefixes() []string { return slices.Clone(p.prefixes) }

func (p *Parser[K]) Delimiters() []string { return slices.Clone(p.delimiters) }

func (p *Parser[K]) Strict() bool { return p.strict }

// IsConfigured reports whether both prefixes and delimiters are set.
func (p *Parser[K]) IsConfigured() bool {
	return len(p.prefixes) > 0 && len(p.delimiters) > 0
}
