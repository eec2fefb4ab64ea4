// Package userlookup holds assets embedded into the binary.
package userlookup

import "embed"

// Migrations contains the goose migrations for the PostgreSQL user store.
//
//go:embed migrations/*.sql
var Migrations embed.FS
