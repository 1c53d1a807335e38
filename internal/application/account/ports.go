package account

import (
	"context"

	"github.com/creatorhub/portal-api/internal/domain/entity"
)

// StatementPDFGenerator genera el estado de cuenta de una factura en PDF.
// La implementación vive en infraestructura (Maroto).
type StatementPDFGenerator interface {
	GenerateStatement(ctx context.Context, user *entity.User, invoice *entity.Invoice) ([]byte, error)
}
