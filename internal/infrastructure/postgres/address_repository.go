package postgres

import (
	"context"
	"fmt"

	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
	"github.com/ewecarreira/pedidos-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación de AddressRepository (usable con pool o tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// Save inserta la dirección y asigna su id.
func (r *AddressRepo) Save(ctx context.Context, a *entity.Address) (*entity.Address, error) {
	query := `
		INSERT INTO enderecos (logradouro, numero, complemento, bairro, cep, cliente_id, cidade_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.Street, a.Number, a.Complement, a.District, a.PostalCode, a.CustomerID, a.CityID,
	).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("insert endereco: %w", err)
	}
	return a, nil
}
