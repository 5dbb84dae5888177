package ports

import "context"

// Table datos tabulares ya formateados como texto, listos para exportar.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// TableExporter serializa una Table a un formato descargable (CSV, PDF).
type TableExporter interface {
	ContentType() string
	Extension() string
	Export(ctx context.Context, t Table) ([]byte, error)
}
