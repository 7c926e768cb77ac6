package manifest

import (
	_ "embed"
	"fmt"

	"github.com/containerd/errdefs"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed manifest.schema.json
var schemaData []byte

var compiled *jsonschema.Schema

func init() {
	var err error
	compiled, err = jsonschema.CompileString("manifest.schema.json", string(schemaData))
	if err != nil {
		panic(fmt.Errorf("compile manifest schema: %w", err))
	}
}

// Validate checks a JSON-decoded document against the manifest schema.
func Validate(doc any) error {
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("validate manifest: %w: %w", errdefs.ErrInvalidArgument, err)
	}
	return nil
}
