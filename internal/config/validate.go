// CUE schema validation for settings files
package config

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

// Validate checks raw YAML settings against the embedded #Settings schema.
// Unknown keys, non-positive speeds and paths shorter than two points are rejected.
func Validate(data []byte) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("cannot compile settings schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Settings"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("settings schema has no #Settings: %w", err)
	}

	if err := cueyaml.Validate(data, def); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}
	return nil
}
