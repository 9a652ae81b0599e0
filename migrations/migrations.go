// Package migrations embeds the SQL schema and seed migrations so the binary
// can run them without access to the source tree.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
