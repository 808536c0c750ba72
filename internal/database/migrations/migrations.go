// Package migrations embeds the goose SQL migrations defining the
// persisted schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
