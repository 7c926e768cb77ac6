package cli

// Result is one occurrence of an argument in the parsed input.
type Result[K Key] struct {
	Key     K
	Payload any
	// Values holds the tokens collected for this occurrence. It is empty,
	// never nil, for a command followed directly by another command.
	Values []string

	descriptor *Descriptor[K]
}

// Priority is the rank of the result's descriptor in its parser.
func (r Result[K]) Priority() int {
	if r.descriptor == nil {
		return 0
	}
	return r.descriptor.priority
}

// Convert applies the descriptor's converter to Values. Errors from a
// caller-supplied converter are returned unchanged.
func (r Result[K]) Convert() ([]any, error) {
	if r.descriptor == nil {
		return Descriptor[K]{}.Convert(r.Values)
	}
	return r.descriptor.Convert(r.Values)
}

// Parsed is the outcome of one Parse call.
type Parsed[K Key] struct {
	// Results are ordered by descriptor priority. Repeated occurrences of
	// one argument keep their input order.
	Results []Result[K]
	// Unclaimed holds leading tokens that were neither commands nor
	// assigned to a positional slot.
	Unclaimed []string
}

// Lookup returns every occurrence of key, in order.
func (p *Parsed[K]) Lookup(key K) []Result[K] {
	var out []Result[K]
	for _, r := range p.Results {
		if r.Key == key {
			out = append(out, r)
		}
	}
	return out
}

func (p *Parsed[K]) Has(key K) bool {
	for _, r := range p.Results {
		if r.Key == key {
			return true
		}
	}
	return false
}
