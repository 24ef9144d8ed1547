// Package docs embeds the OpenAPI document served at /swagger.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
