package cli

import "slices"

// Descriptor registers one recognized argument. Descriptors are values: the
// parser keeps its own copy, so later changes by the caller have no effect.
type Descriptor[K Key] struct {
	key     K
	aliases []string
	settings
}

type settings struct {
	payload    any
	priority   int
	converter  Converter
	comparison Comparison
	position   int
	positional bool
}

// DescriptorOption customizes a descriptor built by NewDescriptor.
type DescriptorOption func(*settings)

// WithPayload attaches caller data that the parser hands back untouched in
// every Result produced for the descriptor.
func WithPayload(payload any) DescriptorOption {
	return func(s *settings) { s.payload = payload }
}

// WithPriority sets the sort key of the descriptor. Lower values come first;
// ties keep registration order.
func WithPriority(priority int) DescriptorOption {
	return func(s *settings) { s.priority = priority }
}

func WithConverter(conv Converter) DescriptorOption {
	return func(s *settings) { s.converter = conv }
}

// WithPrimitive selects one of the built-in converters.
func WithPrimitive(p KnownPrimitive) DescriptorOption {
	return func(s *settings) { s.converter = PrimitiveConverter(p) }
}

func WithComparison(c Comparison) DescriptorOption {
	return func(s *settings) { s.comparison = c }
}

// AtPosition makes the descriptor positional: the n-th token (0-based) that
// appears before any named argument is assigned to it.
func AtPosition(n int) DescriptorOption {
	return func(s *settings) {
		s.position = n
		s.positional = true
	}
}

// NewDescriptor builds a descriptor for key selected by aliases. Without
// options the descriptor has priority 0, no converter, IgnoreCase matching
// and no position.
func NewDescriptor[K Key](key K, aliases []string, opts ...DescriptorOption) Descriptor[K] {
	d := Descriptor[K]{
		key:     key,
		aliases: slices.Clone(aliases),
	}
	for _, opt := range opts {
		opt(&d.settings)
	}
	return d
}

func (d Descriptor[K]) clone() *Descriptor[K] {
	c := d
	c.aliases = slices.Clone(d.aliases)
	return &c
}

func (d Descriptor[K]) Key() K { return d.key }

func (d Descriptor[K]) Payload() any { return d.payload }

// Aliases returns a copy of the spellings that select the descriptor.
func (d Descriptor[K]) Aliases() []string { return slices.Clone(d.aliases) }

// Priority returns the sort key. For descriptors read back from a Parser it
// is the 0-based rank in registry order.
func (d Descriptor[K]) Priority() int { return d.priority }

func (d Descriptor[K]) Converter() Converter { return d.converter }

func (d Descriptor[K]) Comparison() Comparison { return d.comparison }

// Position returns the positional slot and whether one was declared.
func (d Descriptor[K]) Position() (int, bool) {
	if !d.positional {
		return 0, false
	}
	return d.position, true
}

// Matches reports whether name spells one of the aliases under the
// descriptor's comparison.
func (d Descriptor[K]) Matches(name string) bool {
	for _, a := range d.aliases {
		if d.comparison.Equal(a, name) {
			return true
		}
	}
	return false
}

// Convert runs the descriptor's converter over values. Without a converter
// the strings are returned as they are.
func (d Descriptor[K]) Convert(values []string) ([]any, error) {
	if d.converter != nil {
		return d.converter(values)
	}
	if values == nil {
		return nil, nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out, nil
}
