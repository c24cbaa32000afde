package repository

import (
	"context"

	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
)

// AddressRepository define el puerto de persistencia para Address.
type AddressRepository interface {
	Save(ctx context.Context, address *entity.Address) (*entity.Address, error)
}
