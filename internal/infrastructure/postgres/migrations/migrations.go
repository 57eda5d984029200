// Package migrations contiene las migraciones SQL embebidas (goose).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
