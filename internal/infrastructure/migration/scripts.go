package migration

import "embed"

// Scripts holds the SQL migrations, one directory per goose dialect.
//
//go:embed scripts/*/*.sql
var Scripts embed.FS
