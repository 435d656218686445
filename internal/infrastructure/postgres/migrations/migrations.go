// Package migrations embeds the goose SQL migrations. This directory is the
// single source of truth for the database schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
