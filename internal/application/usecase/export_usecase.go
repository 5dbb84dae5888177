package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/microempresas-api/internal/application/ports"
	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/repository"
	"github.com/jhoicas/microempresas-api/pkg/predicate"
)

// Tipos de reporte exportables.
const (
	ExportClientes      = "clientes"
	ExportUsuarios      = "usuarios"
	ExportMicroempresas = "microempresas"
	ExportPlanes        = "planes"
)

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportUseCase genera reportes descargables para super_admin.
type ExportUseCase struct {
	clientes      repository.ClienteRepository
	usuarios      repository.UsuarioRepository
	microempresas repository.MicroempresaRepository
	planes        repository.PlanRepository
	exporters     map[string]ports.TableExporter // por formato: csv, pdf
	now           func() time.Time
}

// NewExportUseCase construye el caso de uso. exporters se indexa por formato.
func NewExportUseCase(
	clientes repository.ClienteRepository,
	usuarios repository.UsuarioRepository,
	microempresas repository.MicroempresaRepository,
	planes repository.PlanRepository,
	exporters map[string]ports.TableExporter,
) *ExportUseCase {
	return &ExportUseCase{
		clientes:      clientes,
		usuarios:      usuarios,
		microempresas: microempresas,
		planes:        planes,
		exporters:     exporters,
		now:           time.Now,
	}
}

// Export arma la tabla del tipo pedido y la serializa en el formato pedido.
func (uc *ExportUseCase) Export(ctx context.Context, tipo, formato string) (*ExportFile, error) {
	if formato == "" {
		formato = "csv"
	}
	exporter, ok := uc.exporters[formato]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, formato)
	}

	var (
		table ports.Table
		err   error
	)
	switch tipo {
	case ExportClientes:
		table, err = uc.tablaClientes(ctx)
	case ExportUsuarios:
		table, err = uc.tablaUsuarios(ctx)
	case ExportMicroempresas:
		table, err = uc.tablaMicroempresas(ctx)
	case ExportPlanes:
		table, err = uc.tablaPlanes(ctx)
	default:
		return nil, fmt.Errorf("%w: tipo %q no soportado", domain.ErrInvalidInput, tipo)
	}
	if err != nil {
		return nil, err
	}

	data, err := exporter.Export(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", tipo, err)
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("%s_%s.%s", tipo, uc.now().Format("20060102"), exporter.Extension()),
		ContentType: exporter.ContentType(),
		Data:        data,
	}, nil
}

func (uc *ExportUseCase) tablaClientes(ctx context.Context) (ports.Table, error) {
	list, _, err := uc.clientes.List(ctx, repository.ClienteFilter{
		JoinEmpresa: true,
		Orden:       repository.OrdenClienteRegistro,
		Page:        predicate.Page{Number: 1, Size: MaxExportRows},
	})
	if err != nil {
		return ports.Table{}, err
	}
	t := ports.Table{
		Title:   "Clientes",
		Headers: []string{"ID", "Nombre / Razón social", "CI/NIT", "Teléfono", "Email", "Origen", "Estado", "Microempresa", "Registro"},
	}
	for _, c := range list {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(c.ID, 10), c.NombreRazonSocial, str(c.CINIT), str(c.Telefono), str(c.Email),
			c.Origen, c.Estado, str(c.EmpresaNombre), c.FechaRegistro.Format("2006-01-02"),
		})
	}
	return t, nil
}

func (uc *ExportUseCase) tablaUsuarios(ctx context.Context) (ports.Table, error) {
	list, err := uc.usuarios.List(ctx)
	if err != nil {
		return ports.Table{}, err
	}
	t := ports.Table{
		Title:   "Usuarios",
		Headers: []string{"ID", "Nombre", "Email", "Rol", "Estado", "Microempresa", "Registro"},
	}
	for _, u := range list {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(u.ID, 10), u.Nombre, u.Email, u.Rol, u.Estado,
			str(u.EmpresaNombre), u.FechaRegistro.Format("2006-01-02"),
		})
	}
	return t, nil
}

func (uc *ExportUseCase) tablaMicroempresas(ctx context.Context) (ports.Table, error) {
	list, err := uc.microempresas.ListCompleto(ctx)
	if err != nil {
		return ports.Table{}, err
	}
	t := ports.Table{
		Title:   "Microempresas",
		Headers: []string{"ID", "Nombre", "Rubro", "Teléfono", "Estado", "Plan", "Precio", "Usuarios", "Clientes"},
	}
	for _, m := range list {
		precio := ""
		if m.Precio.Valid {
			precio = m.Precio.Decimal.StringFixed(2)
		}
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(m.ID, 10), m.Nombre, m.Rubro, m.Telefono, m.Estado,
			str(m.NombrePlan), precio, strconv.Itoa(m.UsuariosCount), strconv.Itoa(m.ClientesCount),
		})
	}
	return t, nil
}

func (uc *ExportUseCase) tablaPlanes(ctx context.Context) (ports.Table, error) {
	list, err := uc.planes.ListConEmpresas(ctx)
	if err != nil {
		return ports.Table{}, err
	}
	t := ports.Table{
		Title:   "Planes de pago",
		Headers: []string{"ID", "Plan", "Tipo", "Precio", "Límite usuarios", "Límite productos", "Estado", "Empresas", "Activas"},
	}
	for _, p := range list {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(p.ID, 10), p.NombrePlan, p.TipoPlan, p.Precio.StringFixed(2),
			strconv.Itoa(p.LimiteUsuarios), strconv.Itoa(p.LimiteProductos), p.Estado,
			strconv.Itoa(p.EmpresasCount), strconv.Itoa(p.EmpresasActivas),
		})
	}
	return t, nil
}

// MaxExportRows tope de filas de un reporte de clientes.
const MaxExportRows = 50000

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
