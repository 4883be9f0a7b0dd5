// Package migrations embeds the catalog schema and sample data.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
