package repository

import (
	"context"
	"fmt"

	"github.com/ewecarreira/pedidos-api/internal/domain"
	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
)

// SortDirection dirección de orden para listados paginados.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection valida el valor externo contra el enum.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: dirección de orden %q", domain.ErrInvalidInput, s)
	}
}

// PageRequest página, tamaño y orden para FindPage. Page es base cero.
type PageRequest struct {
	Page         int
	LinesPerPage int
	OrderBy      string
	Direction    SortDirection
}

// CustomerRepository define el puerto de persistencia para Customer.
// Save asigna identidad en la primera persistencia (ID == 0).
// Los lookups devuelven (nil, nil) cuando el registro no existe.
type CustomerRepository interface {
	Save(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	FindPage(ctx context.Context, page PageRequest) ([]*entity.Customer, error)
	DeleteByID(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
