// Package predicate construye cláusulas WHERE parametrizadas para PostgreSQL ($1, $2, …)
// sin concatenar valores en el SQL. No depende de la base de datos: se prueba con strings.
//
//	b := predicate.New().
//		Eq("c.estado", "activo").
//		EqID("c.microempresa_id", tenant).
//		ILikeAny(search, "c.nombre_razon_social", "c.email")
//	rows, _ := q.Query(ctx, base+" "+b.Where(), b.Args()...)
package predicate

import (
	"math"
	"strconv"
	"strings"
)

// Builder acumula condiciones unidas con AND. El valor cero no es usable: usar New.
type Builder struct {
	conds []string
	args  []any
}

// New crea un builder vacío.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) placeholder(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// Eq agrega `col = $n`.
func (b *Builder) Eq(col string, v any) *Builder {
	b.conds = append(b.conds, col+" = "+b.placeholder(v))
	return b
}

// EqStr agrega `col = $n` solo si v no está vacío.
func (b *Builder) EqStr(col, v string) *Builder {
	if strings.TrimSpace(v) == "" {
		return b
	}
	return b.Eq(col, v)
}

// EqID agrega `col = $n` solo si id no es nil.
func (b *Builder) EqID(col string, id *int64) *Builder {
	if id == nil {
		return b
	}
	return b.Eq(col, *id)
}

// IsNull agrega `col IS NULL`.
func (b *Builder) IsNull(col string) *Builder {
	b.conds = append(b.conds, col+" IS NULL")
	return b
}

// ILikeAny agrega una búsqueda por subcadena sin distinguir mayúsculas sobre varias columnas,
// unidas con OR. Un término vacío no agrega nada. Los comodines del término se escapan.
func (b *Builder) ILikeAny(term string, cols ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return b
	}
	ph := b.placeholder("%" + EscapeLike(term) + "%")
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE " + ph
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
	return b
}

// Raw agrega un fragmento arbitrario; cada `?` se reemplaza por el siguiente placeholder.
func (b *Builder) Raw(fragment string, args ...any) *Builder {
	var sb strings.Builder
	i := 0
	for _, r := range fragment {
		if r == '?' && i < len(args) {
			sb.WriteString(b.placeholder(args[i]))
			i++
			continue
		}
		sb.WriteRune(r)
	}
	b.conds = append(b.conds, sb.String())
	return b
}

// Len número de condiciones.
func (b *Builder) Len() int {
	return len(b.conds)
}

// Where devuelve "WHERE c1 AND c2 …" o "" si no hay condiciones.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// Args devuelve una copia de los argumentos en orden de placeholder.
func (b *Builder) Args() []any {
	out := make([]any, len(b.args))
	copy(out, b.args)
	return out
}

// Paginate devuelve "LIMIT $n OFFSET $m" numerado a continuación de las condiciones y los
// argumentos completos. No modifica el builder: Where/Args siguen sirviendo para el COUNT.
func (b *Builder) Paginate(p Page) (string, []any) {
	args := b.Args()
	args = append(args, p.Size, p.Offset())
	n := len(args)
	return "LIMIT $" + strconv.Itoa(n-1) + " OFFSET $" + strconv.Itoa(n), args
}

// EscapeLike escapa los comodines de LIKE/ILIKE (escape por defecto de PostgreSQL: \).
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Page paginación 1-based.
type Page struct {
	Number int
	Size   int
}

// MaxOffset tope del OFFSET generado; páginas más allá se recortan a la última alcanzable.
const MaxOffset = math.MaxInt32

// NewPage normaliza número y tamaño: número < 1 es 1, tamaño < 1 es def, tamaño > max es max.
// El número se acota para que Offset no supere MaxOffset ni desborde int.
func NewPage(number, size, def, max int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = def
	}
	if max > 0 && size > max {
		size = max
	}
	if size < 1 {
		size = 1
	}
	if limit := MaxOffset/size + 1; number > limit {
		number = limit
	}
	return Page{Number: number, Size: size}
}

// Offset (Number-1) × Size.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
