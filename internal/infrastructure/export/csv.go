// Package export serializa tablas de reportes a formatos descargables.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/microempresas-api/internal/application/ports"
)

var _ ports.TableExporter = (*CSVExporter)(nil)

// CSVExporter CSV separado por punto y coma y codificado en Windows-1252, que es lo que
// Excel en español abre sin asistente de importación. Los caracteres sin equivalente se
// reemplazan en lugar de fallar.
type CSVExporter struct {
	Comma rune
}

// NewCSVExporter construye el exportador con separador ';'.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{Comma: ';'}
}

func (e *CSVExporter) ContentType() string { return "text/csv; charset=windows-1252" }
func (e *CSVExporter) Extension() string   { return "csv" }

// Export escribe encabezados y filas; el título no forma parte del CSV.
func (e *CSVExporter) Export(_ context.Context, t ports.Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	tw := transform.NewWriter(&buf, enc)

	w := csv.NewWriter(tw)
	w.Comma = e.Comma
	w.UseCRLF = true
	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("csv: encabezados: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("csv: filas: %w", err)
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("csv: codificar: %w", err)
	}
	return buf.Bytes(), nil
}
