package manifest

// Manifest describes a parser: its configuration and the arguments it
// recognizes.
type Manifest struct {
	Prefixes   []string `json:"prefixes,omitempty"`
	Delimiters []string `json:"delimiters,omitempty"`
	Strict     bool     `json:"strict,omitempty"`
	// Keys, when set, is the closed set of legal argument keys.
	Keys      []string   `json:"keys,omitempty"`
	Arguments []Argument `json:"arguments"`
}

// Argument describes one recognized argument.
type Argument struct {
	Key         string   `json:"key"`
	Aliases     []string `json:"aliases,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Type        string   `json:"type,omitempty"`
	Compare     string   `json:"compare,omitempty"`
	Position    *int     `json:"position,omitempty"`
	Description string   `json:"description,omitempty"`
}
