// Package seoaudit is the module root. It only carries embedded assets shared by
// the commands.
package seoaudit

import "embed"

// Migrations holds the goose SQL migrations of the service schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
