package cli

// Key is the constraint on argument identifiers. Callers normally declare a
// closed enumeration such as
//
//	type Arg int
//
//	const (
//		Config Arg = iota
//		Count
//		Verbose
//	)
//
// and pass the full set to WithKeys so stray values are rejected.
type Key interface {
	comparable
}

type keySet func(k any) bool

func newKeySet[K Key](keys []K) keySet {
	set := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(k any) bool {
		kk, ok := k.(K)
		if !ok {
			return false
		}
		_, ok = set[kk]
		return ok
	}
}
