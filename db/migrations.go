// Package db embeds the goose migrations for the postgres dataset store.
package db

import "embed"

// Migrations holds every file under migrations/; goose reads it with dir "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory name inside Migrations.
const MigrationsDir = "migrations"
