// seed genera el script SQL con los datos mínimos para arrancar: roles, el usuario super_admin
// y, opcionalmente, el catálogo de planes a partir de un CSV exportado desde el panel
// (GET /api/super-admin/export/planes?formato=csv, separado por ';' y en Windows-1252).
//
// Uso: SEED_ADMIN_EMAIL=admin@empresa.bo SEED_ADMIN_PASSWORD=... go run ./cmd/seed [planes.csv]
// Escribe: migrations/0002_seed.up.sql
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

type plan struct {
	nombre, tipo, estado string
	precio               decimal.Decimal
	limUsuarios, limProd int
}

func main() {
	email := strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de password: %v\n", err)
		os.Exit(1)
	}

	var planes []plan
	if len(os.Args) > 1 {
		planes, err = leerPlanes(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer planes: %v\n", err)
			os.Exit(1)
		}
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "0002_seed.up.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos iniciales: roles, super_admin y planes\n")
	out.WriteString("-- Generado por cmd/seed\n\n")

	out.WriteString("-- 1. Roles\n")
	out.WriteString("INSERT INTO rol (tipo_rol) VALUES\n")
	fmt.Fprintf(out, "  ('%s'),\n  ('%s'),\n  ('%s')\n", entity.RolSuperAdmin, entity.RolAdministrador, entity.RolVendedor)
	out.WriteString("ON CONFLICT (tipo_rol) DO NOTHING;\n\n")

	out.WriteString("-- 2. Super admin (sin microempresa)\n")
	out.WriteString("INSERT INTO usuario (nombre, email, password, rol_id, estado)\n")
	fmt.Fprintf(out, "SELECT 'Super Admin', '%s', '%s', id_rol, 'activo' FROM rol WHERE tipo_rol = '%s'\n",
		escapeSQL(email), escapeSQL(string(hash)), entity.RolSuperAdmin)
	fmt.Fprintf(out, "AND NOT EXISTS (SELECT 1 FROM usuario WHERE LOWER(email) = LOWER('%s'));\n\n", escapeSQL(email))

	if len(planes) > 0 {
		out.WriteString("-- 3. Planes\n")
		for _, p := range planes {
			out.WriteString("INSERT INTO plan_pago (nombre_plan, tipo_plan, precio, limite_usuarios, limite_productos, estado)\n")
			fmt.Fprintf(out, "SELECT '%s', '%s', %s, %d, %d, '%s'\n",
				escapeSQL(p.nombre), escapeSQL(p.tipo), p.precio.StringFixed(2), p.limUsuarios, p.limProd, escapeSQL(p.estado))
			fmt.Fprintf(out, "WHERE NOT EXISTS (SELECT 1 FROM plan_pago WHERE nombre_plan = '%s');\n", escapeSQL(p.nombre))
		}
	}

	fmt.Printf("Generado %s: super_admin %s, %d planes\n", outPath, email, len(planes))
}

// leerPlanes lee el CSV de planes del panel. Columnas: ID;Plan;Tipo;Precio;Límite usuarios;
// Límite productos;Estado;... La primera fila es el encabezado.
func leerPlanes(path string) ([]plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	var out []plan
	for line := 1; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 || len(rec) < 7 {
			continue
		}
		p := plan{
			nombre: strings.TrimSpace(rec[1]),
			tipo:   strings.TrimSpace(rec[2]),
			estado: strings.TrimSpace(rec[6]),
		}
		if p.nombre == "" {
			continue
		}
		if p.precio, err = decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[3]), ",", ".")); err != nil {
			return nil, fmt.Errorf("línea %d: precio: %w", line, err)
		}
		p.limUsuarios, _ = strconv.Atoi(strings.TrimSpace(rec[4]))
		p.limProd, _ = strconv.Atoi(strings.TrimSpace(rec[5]))
		if !entity.EstadoPlanValido(p.estado) {
			p.estado = entity.EstadoActivo
		}
		out = append(out, p)
	}
	return out, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
