// Package migrations embeds the goose SQL migration files so the server
// and the migrate command can apply them without a checkout on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
