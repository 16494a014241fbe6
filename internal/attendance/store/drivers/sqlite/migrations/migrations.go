package migrations

import "embed"

// Migrations holds the golang-migrate files applied by sqlite.ApplyMigrations.
//
//go:embed *.sql
var Migrations embed.FS
