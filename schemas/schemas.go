// Package schemas embeds the JSON schemas used to validate user-authored
// files.
package schemas

import _ "embed"

// ConfigSchemaJSON is the schema for .bracketsim.yaml.
//
//go:embed config.schema.json
var ConfigSchemaJSON string
