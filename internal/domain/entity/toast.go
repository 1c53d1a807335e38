package entity

import "time"

// Tipos de toast.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// ToastDuration tiempo de vida de un aviso antes de auto-eliminarse.
const ToastDuration = 4 * time.Second

// Toast es un aviso transitorio mostrado tras el resultado de una acción.
// Su identificador es único entre los toasts vivos; cada vida es independiente
// de las demás y expira sola pasado ToastDuration, salvo cierre manual.
type Toast struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // success, error
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
