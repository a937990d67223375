// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after
// it unmarshals the merged Koanf tree into a `Config` instance.  Any
// tag mismatch aborts startup, so the binary never runs with partial or
// malformed host configuration.
//
// Note this is deliberately a different animal from bridge.Validate:
// that one checks untrusted user documents and accumulates errors as
// data; this one checks our own struct tags and fails fast.

package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
