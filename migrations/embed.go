package migrations

import "embed"

//go:embed V*.sql
var FS embed.FS
