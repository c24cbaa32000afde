package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ewecarreira/pedidos-api/internal/domain"
	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
	"github.com/ewecarreira/pedidos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, nome, email, cpf_cnpj, tipo, senha_hash, telefones, perfis, created_at, updated_at`

// Columnas permitidas para ORDER BY en FindPage. El valor externo nunca se
// interpola sin pasar por este mapa.
var orderColumns = map[string]string{
	"id":    "id",
	"nome":  "nome",
	"email": "email",
}

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Save persiste el cliente. Con ID == 0 inserta y el store asigna la
// identidad; con ID ya asignado actualiza la fila existente.
func (r *CustomerRepo) Save(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	now := time.Now()
	if c.ID == 0 {
		c.CreatedAt = now
		c.UpdatedAt = now
		query := `
			INSERT INTO clientes (nome, email, cpf_cnpj, tipo, senha_hash, telefones, perfis, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`
		err := r.q.QueryRow(ctx, query,
			c.Name, c.Email, c.TaxID, int(c.Type), c.PasswordHash, c.Phones, c.Roles,
			c.CreatedAt, c.UpdatedAt,
		).Scan(&c.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrDuplicate
			}
			return nil, fmt.Errorf("insert cliente: %w", err)
		}
		return c, nil
	}

	c.UpdatedAt = now
	query := `
		UPDATE clientes
		SET nome = $2, email = $3, cpf_cnpj = $4, tipo = $5, senha_hash = $6, telefones = $7, perfis = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.TaxID, int(c.Type), c.PasswordHash, c.Phones, c.Roles, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update cliente: %w", err)
	}
	return c, nil
}

// FindByID obtiene un cliente por id con sus direcciones cargadas.
// Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := r.findOne(ctx, `SELECT `+customerColumns+` FROM clientes WHERE id = $1`, id)
	if err != nil || c == nil {
		return c, err
	}
	addresses, err := r.findAddresses(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Addresses = addresses
	return c, nil
}

// FindByEmail obtiene un cliente por email. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.findOne(ctx, `SELECT `+customerColumns+` FROM clientes WHERE email = $1`, email)
}

// FindAll lista todos los clientes (sin direcciones).
func (r *CustomerRepo) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM clientes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// FindPage lista una página de clientes ordenada según el PageRequest.
func (r *CustomerRepo) FindPage(ctx context.Context, page repository.PageRequest) ([]*entity.Customer, error) {
	column, ok := orderColumns[page.OrderBy]
	if !ok {
		return nil, fmt.Errorf("%w: columna de orden %q", domain.ErrInvalidInput, page.OrderBy)
	}
	query := fmt.Sprintf(`SELECT %s FROM clientes ORDER BY %s %s LIMIT $1 OFFSET $2`,
		customerColumns, column, page.Direction)
	rows, err := r.q.Query(ctx, query, page.LinesPerPage, page.Page*page.LinesPerPage)
	if err != nil {
		return nil, fmt.Errorf("page clientes: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// DeleteByID elimina un cliente. Una violación de foreign key (el cliente
// tiene pedidos) se mapea a ErrHasDependents conservando la causa.
func (r *CustomerRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", domain.ErrHasDependents, err)
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña del cliente.
func (r *CustomerRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE clientes SET senha_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update senha cliente: %w", err)
	}
	return nil
}

func (r *CustomerRepo) findOne(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	var tipo int
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.TaxID, &tipo, &c.PasswordHash,
		&c.Phones, &c.Roles, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	c.Type = entity.CustomerType(tipo)
	return &c, nil
}

func (r *CustomerRepo) findAddresses(ctx context.Context, customerID int64) ([]entity.Address, error) {
	query := `
		SELECT id, logradouro, numero, complemento, bairro, cep, cliente_id, cidade_id
		FROM enderecos WHERE cliente_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list enderecos: %w", err)
	}
	defer rows.Close()
	var list []entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.Number, &a.Complement, &a.District, &a.PostalCode, &a.CustomerID, &a.CityID); err != nil {
			return nil, fmt.Errorf("scan endereco: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var tipo int
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.TaxID, &tipo, &c.PasswordHash,
			&c.Phones, &c.Roles, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		c.Type = entity.CustomerType(tipo)
		list = append(list, &c)
	}
	return list, rows.Err()
}
