package manifest

import (
	"fmt"

	"github.com/kurzatem/argparser/internal/pkg/cli"
)

// Descriptors converts the arguments into parser descriptors keyed by
// Argument.Key. Each descriptor carries its Argument as payload.
func (m *Manifest) Descriptors() ([]cli.Descriptor[string], error) {
	out := make([]cli.Descriptor[string], 0, len(m.Arguments))
	for i, a := range m.Arguments {
		prim, err := cli.ParseKnownPrimitive(a.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, a.Key, err)
		}
		cmp, err := cli.ParseComparison(a.Compare)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, a.Key, err)
		}
		opts := []cli.DescriptorOption{
			cli.WithPayload(a),
			cli.WithPriority(a.Priority),
			cli.WithPrimitive(prim),
			cli.WithComparison(cmp),
		}
		if a.Position != nil {
			opts = append(opts, cli.AtPosition(*a.Position))
		}
		out = append(out, cli.NewDescriptor(a.Key, a.Aliases, opts...))
	}
	return out, nil
}

// Options returns the parser configuration of the manifest.
func (m *Manifest) Options() []cli.Option {
	opts := []cli.Option{
		cli.WithPrefixes(m.Prefixes...),
		cli.WithDelimiters(m.Delimiters...),
		cli.WithStrict(m.Strict),
	}
	if len(m.Keys) > 0 {
		opts = append(opts, cli.WithKeys(m.Keys...))
	}
	return opts
}

// Build validates the manifest's arguments and returns the parser.
func (m *Manifest) Build() (*cli.Parser[string], error) {
	descs, err := m.Descriptors()
	if err != nil {
		return nil, err
	}
	p, err := cli.New(descs, m.Options()...)
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}
	return p, nil
}
