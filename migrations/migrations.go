// Package migrations embeds the SQL schema migrations for each relational store.
package migrations

import "embed"

// FS holds postgres/*.sql and mysql/*.sql in golang-migrate naming.
//
//go:embed postgres/*.sql mysql/*.sql
var FS embed.FS
