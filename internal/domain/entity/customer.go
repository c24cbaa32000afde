package entity

import (
	"fmt"
	"time"

	"github.com/ewecarreira/pedidos-api/internal/domain"
)

// Perfiles válidos para Customer.
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// CustomerType clasificación del cliente según su documento fiscal.
type CustomerType int

const (
	Individual   CustomerType = iota // persona física (CPF)
	Organization                     // persona jurídica (CNPJ)
)

// ParseCustomerType convierte el código externo del payload al enum.
func ParseCustomerType(code int) (CustomerType, error) {
	switch code {
	case 0:
		return Individual, nil
	case 1:
		return Organization, nil
	default:
		return 0, fmt.Errorf("%w: tipo de cliente %d", domain.ErrInvalidInput, code)
	}
}

// Customer representa un cliente del back-office de pedidos.
// ID es 0 hasta que el store asigna identidad en la primera persistencia.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	TaxID        string // CPF o CNPJ; solo se captura en el registro completo
	Type         CustomerType
	PasswordHash string // bcrypt hash, nunca texto plano después de construir
	Phones       []string
	Roles        []string // admin, cliente
	Addresses    []Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
