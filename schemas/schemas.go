// Package schemas holds the embedded JSON Schemas for umlcmp input files.
package schemas

import _ "embed"

// ModelSchemaJSON is the JSON Schema for model description files
// (the {classes, relationships} documents produced by each source).
//
//go:embed model.schema.json
var ModelSchemaJSON string
