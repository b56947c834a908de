// Package migrations embute os arquivos .sql de schema para que o binário
// consiga migrar o banco sozinho, sem depender de arquivos no disco.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
