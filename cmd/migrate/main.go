// migrate aplica en orden los scripts migrations/*.up.sql.
//
// Uso: go run ./cmd/migrate [postgres://...]
// Sin argumento usa DATABASE_URL.
package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/microempresas-api/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: "development", Level: "info", Service: "migrate"})

	connStr := os.Getenv("DATABASE_URL")
	if len(os.Args) > 1 {
		connStr = os.Args[1]
	}
	if connStr == "" {
		log.Fatal().Msg("indique la conexión como argumento o en DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conn.Close(context.Background())

	files, err := filepath.Glob(filepath.Join("migrations", "*.up.sql"))
	if err != nil {
		log.Fatal().Err(err).Msg("listar migraciones")
	}
	sort.Strings(files)

	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("leer migración")
		}
		// Sin argumentos pgx usa el protocolo simple: el archivo puede tener varias sentencias.
		if _, err := conn.Exec(ctx, string(content)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("ejecutar migración")
		}
		log.Info().Str("file", f).Msg("migración aplicada")
	}

	log.Info().Int("total", len(files)).Msg("migraciones completadas")
}
