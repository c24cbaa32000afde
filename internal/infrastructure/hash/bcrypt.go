package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ewecarreira/pedidos-api/internal/application/customer"
)

var _ customer.Hasher = (*BcryptHasher)(nil)

// BcryptHasher implementa el puerto Hasher con bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher con el costo por defecto de bcrypt.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash devuelve el hash bcrypt del texto plano.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash contraseña: %w", err)
	}
	return string(out), nil
}
