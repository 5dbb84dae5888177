// Package pdf implementa los reportes PDF del panel de super_admin.
//
// Layout de la página A4 horizontal:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte       │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: encabezados en color primario                       │
//	│         una fila por registro (filas alternas en gris)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/microempresas-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.TableExporter = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.TableExporter usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
	now    func() time.Time
}

// NewMarotoPDFGenerator construye el generador. author va en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author, now: time.Now}
}

func (g *MarotoPDFGenerator) ContentType() string { return "application/pdf" }
func (g *MarotoPDFGenerator) Extension() string   { return "pdf" }

// Export genera el PDF de la tabla y devuelve sus bytes.
func (g *MarotoPDFGenerator) Export(_ context.Context, t ports.Table) ([]byte, error) {
	if len(t.Headers) == 0 {
		return nil, fmt.Errorf("pdf: la tabla no tiene columnas")
	}
	sizes := columnSizes(len(t.Headers))

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(sum(sizes)).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(t.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(t.Title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(t.Headers, sizes))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range tableRows(t.Rows, sizes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(t.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New().Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(headers []string, sizes []int) core.Row {
	cols := make([]core.Col, len(headers))
	for i, h := range headers {
		cols[i] = col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...)
}

func tableRows(rows [][]string, sizes []int) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		color := &props.Color{}
		if i%2 == 1 {
			color = colorGray
		}
		cols := make([]core.Col, len(sizes))
		for j := range sizes {
			value := ""
			if j < len(r) {
				value = r[j]
			}
			cols[j] = col.New(sizes[j]).Add(text.New(nonEmpty(value, "—"), props.Text{
				Size: 7.5, Top: 1, Left: 1, Right: 1, Color: color,
			}))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New().Add(
		text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Color: colorPrimary,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnSizes la primera columna (ID) ocupa 1 unidad de grilla y el resto 2.
func columnSizes(n int) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 2
	}
	sizes[0] = 1
	return sizes
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
