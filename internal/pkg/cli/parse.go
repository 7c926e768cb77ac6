package cli

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/google/shlex"

	"github.com/kurzatem/argparser/internal/pkg/prioritized"
)

// Parse groups args (without the program name) into results.
//
// Tokens before the first command fill the positional slots in order. From
// the first command on, every token is either a new command, which closes
// the previous one, or a value of the open command. Each occurrence of a
// command yields its own Result; descriptors that never occur yield none.
func (p *Parser[K]) Parse(args []string) (*Parsed[K], error) {
	results := prioritized.New(func(a, b Result[K]) int {
		return cmp.Compare(a.descriptor.priority, b.descriptor.priority)
	})
	emit := func(d *Descriptor[K], values []string) {
		results.InsertOrAppend(Result[K]{Key: d.key, Payload: d.payload, Values: values, descriptor: d})
	}

	var (
		open      *Descriptor[K]
		values    []string
		unclaimed []string
		slot      int
	)
	for _, arg := range args {
		d, err := p.command(arg)
		if err != nil {
			return nil, err
		}
		switch {
		case d != nil:
			if open != nil {
				emit(open, values)
			}
			open, values = d, []string{}
		case open != nil:
			values = append(values, arg)
		case slot < len(p.positional):
			emit(p.descriptors.At(p.positional[slot]), []string{arg})
			slot++
		case p.strict:
			return nil, &UnknownCommandError{Token: arg}
		default:
			unclaimed = append(unclaimed, arg)
		}
	}
	if open != nil {
		emit(open, values)
	}

	return &Parsed[K]{Results: results.Slice(), Unclaimed: unclaimed}, nil
}

// ParseString splits line with shell quoting rules and parses the words.
func (p *Parser[K]) ParseString(line string) (*Parsed[K], error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}
	return p.Parse(args)
}

// command returns the descriptor selected by arg, or nil when arg is a value.
func (p *Parser[K]) command(arg string) (*Descriptor[K], error) {
	if len(p.prefixes) == 0 {
		d := p.lookup(arg)
		if d == nil && p.strict {
			return nil, &UnknownCommandError{Token: arg}
		}
		return d, nil
	}

	var prefixed bool
	for _, prefix := range p.matchOrder {
		name, ok := strings.CutPrefix(arg, prefix)
		if !ok {
			continue
		}
		prefixed = true
		if d := p.lookup(name); d != nil {
			return d, nil
		}
	}
	if prefixed && p.strict {
		return nil, &UnknownCommandError{Token: arg}
	}
	return nil, nil
}

func (p *Parser[K]) lookup(name string) *Descriptor[K] {
	for _, d := range p.descriptors.All() {
		if d.Matches(name) {
			return d
		}
	}
	return nil
}
