// internal/bridge/parse.go
//
// Deserialize-then-validate composition.
//
// Parse is the only way raw text becomes a Config: it decodes into an
// untyped document for Validate (which needs to see the actual shape,
// not a best-effort coercion), then builds the typed struct from that
// same document.  Validation constrains only `name` and `installers`;
// optional fields carrying the wrong type are treated as absent, never
// as a parse failure.  Decoder errors are caught here and returned as
// data with the underlying message preserved; nothing in this package
// throws past its boundary for bad input.

package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/installbridge/installbridge/internal/platform"
)

// Parse deserializes text as JSON and validates the result.
func Parse(text string) ParseResult {
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return ParseResult{Errors: []string{fmt.Sprintf("Invalid JSON: %v", err)}}
	}

	if res := Validate(doc); !res.Valid {
		return ParseResult{Errors: res.Errors}
	}

	cfg := fromDocument(doc.(map[string]any))
	return ParseResult{Success: true, Config: &cfg}
}

// fromDocument builds the typed Config from a document that already
// passed Validate.  The unchecked assertions on name and installers
// are safe — validation rejected every other shape.  Optional fields
// are taken only when they carry the right type.
func fromDocument(doc map[string]any) Config {
	cfg := Config{
		Name:       doc["name"].(string),
		Installers: map[platform.Platform]string{},
	}
	for key, val := range doc["installers"].(map[string]any) {
		cfg.Installers[platform.Platform(key)] = val.(string)
	}

	if s, ok := doc["homepage"].(string); ok {
		cfg.Homepage = s
	}
	if s, ok := doc["fallback"].(string); ok {
		cfg.Fallback = s
	}
	if b, ok := doc["badge"].(map[string]any); ok {
		opts := &BadgeOptions{}
		opts.Label, _ = b["label"].(string)
		opts.Color, _ = b["color"].(string)
		opts.Style, _ = b["style"].(string)
		cfg.Badge = opts
	}
	return cfg
}
