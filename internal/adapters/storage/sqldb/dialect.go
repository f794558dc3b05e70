// Package sqldb implementa los stores de wolves y packs sobre database/sql.
// Postgres y SQLite comparten las consultas; Dialect ajusta los placeholders.
package sqldb

import (
	"regexp"
)

type Dialect struct {
	Name string

	// Rebind traduce los placeholders $N al formato del driver.
	Rebind func(query string) string
}

var Postgres = Dialect{
	Name:   "postgres",
	Rebind: func(q string) string { return q },
}

var dollarParam = regexp.MustCompile(`\$(\d+)`)

// SQLite usa ?N (numerados) para poder repetir parámetros igual que en postgres.
var SQLite = Dialect{
	Name: "sqlite",
	Rebind: func(q string) string {
		return dollarParam.ReplaceAllString(q, "?$1")
	},
}
