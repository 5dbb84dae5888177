package entity

import "time"

// Visita registro append-only de un cliente público entrando a una microempresa.
type Visita struct {
	ID             int64
	ClienteID      int64
	MicroempresaID int64
	FechaVisita    time.Time
}
