package migrations

import "embed"

// FS embeds the SQL schema of the escrow store. golang-migrate reads it
// through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
