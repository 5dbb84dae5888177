package entity

import "time"

// Microempresa tenant del sistema.
type Microempresa struct {
	ID            int64
	Nombre        string
	Direccion     string
	Telefono      string
	Rubro         string
	Descripcion   string
	Estado        string // activa, inactiva
	PlanID        *int64
	FechaRegistro time.Time
}
