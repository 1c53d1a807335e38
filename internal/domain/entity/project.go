package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusPending   = "pending"
)

// Project representa un proyecto del creador con su presupuesto.
// Progress se almacena de forma independiente de Spent/Budget y puede
// contradecirlos; no se deriva ni se valida ninguna relación entre ellos.
type Project struct {
	ID        string
	UserID    string
	Name      string
	Status    string // active, completed, pending
	Budget    decimal.Decimal
	Spent     decimal.Decimal // se espera spent <= budget pero no se valida
	StartDate time.Time
	DueDate   time.Time
	Progress  int // 0-100
	CreatedAt time.Time
}
