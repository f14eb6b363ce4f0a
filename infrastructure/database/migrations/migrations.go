package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version é a última migração conhecida
const Version = 1
