package predicate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/microempresas-api/pkg/predicate"
)

func TestBuilder_Vacio(t *testing.T) {
	b := predicate.New()
	assert.Equal(t, "", b.Where())
	assert.Empty(t, b.Args())
	assert.Equal(t, 0, b.Len())
}

func TestBuilder_CombinaCondicionesConAND(t *testing.T) {
	tenant := int64(4)
	b := predicate.New().
		Eq("c.estado", "activo").
		EqID("c.microempresa_id", &tenant).
		EqStr("c.origen", "publico").
		ILikeAny("gmail", "c.nombre_razon_social", "c.email", "c.ci_nit", "c.telefono")

	assert.Equal(t,
		"WHERE c.estado = $1 AND c.microempresa_id = $2 AND c.origen = $3 AND "+
			"(c.nombre_razon_social ILIKE $4 OR c.email ILIKE $4 OR c.ci_nit ILIKE $4 OR c.telefono ILIKE $4)",
		b.Where())
	assert.Equal(t, []any{"activo", int64(4), "publico", "%gmail%"}, b.Args())
}

func TestBuilder_OmiteFiltrosVacios(t *testing.T) {
	b := predicate.New().
		EqID("c.microempresa_id", nil).
		EqStr("c.origen", "  ").
		ILikeAny("", "c.email")

	assert.Equal(t, "", b.Where())
	assert.Empty(t, b.Args())
}

func TestBuilder_EscapaComodines(t *testing.T) {
	b := predicate.New().ILikeAny(`50%_off\`, "c.nombre_razon_social")
	assert.Equal(t, []any{`%50\%\_off\\%`}, b.Args())
}

func TestBuilder_RawNumeraPlaceholders(t *testing.T) {
	b := predicate.New().
		Eq("estado", "activo").
		Raw("fecha_registro BETWEEN ? AND ?", "2024-01-01", "2024-12-31").
		IsNull("microempresa_id")

	assert.Equal(t, "WHERE estado = $1 AND fecha_registro BETWEEN $2 AND $3 AND microempresa_id IS NULL", b.Where())
	assert.Len(t, b.Args(), 3)
}

func TestBuilder_PaginateNoModificaArgs(t *testing.T) {
	b := predicate.New().Eq("estado", "activo")
	clause, args := b.Paginate(predicate.NewPage(3, 20, 1000, 1000))

	assert.Equal(t, "LIMIT $2 OFFSET $3", clause)
	assert.Equal(t, []any{"activo", 20, 40}, args)
	assert.Equal(t, []any{"activo"}, b.Args(), "los args del COUNT no incluyen la paginación")
}

func TestNewPage_Normaliza(t *testing.T) {
	p := predicate.NewPage(0, 0, 1000, 1000)
	assert.Equal(t, predicate.Page{Number: 1, Size: 1000}, p)
	assert.Equal(t, 0, p.Offset())

	p = predicate.NewPage(2, 5000, 1000, 1000)
	assert.Equal(t, 1000, p.Size)
	assert.Equal(t, 1000, p.Offset())

	// ?page=9223372036854775807 no puede producir un OFFSET negativo.
	p = predicate.NewPage(math.MaxInt, 1000, 1000, 1000)
	assert.Equal(t, predicate.MaxOffset/1000+1, p.Number)
	assert.GreaterOrEqual(t, p.Offset(), 0)
	assert.LessOrEqual(t, p.Offset(), predicate.MaxOffset)

	p = predicate.NewPage(math.MaxInt, 1, 1000, 1000)
	assert.Equal(t, predicate.MaxOffset, p.Offset())
}
