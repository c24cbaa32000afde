package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrAccessDenied  = errors.New("acceso denegado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrEmailNotFound = errors.New("email no registrado")
	ErrHasDependents = errors.New("violación de integridad referencial")
)

// NotFoundError identifica el registro ausente: id y tipo de entidad.
type NotFoundError struct {
	ID   int64
	Kind string
}

// NewNotFound construye un NotFoundError.
func NewNotFound(id int64, kind string) *NotFoundError {
	return &NotFoundError{ID: id, Kind: kind}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recurso no encontrado: id %d, tipo %s", e.ID, e.Kind)
}

// DataIntegrityError presenta un mensaje estable al caller y conserva la
// violación de constraint del store como causa para diagnóstico.
type DataIntegrityError struct {
	Message string
	Cause   error
}

func (e *DataIntegrityError) Error() string { return e.Message }

func (e *DataIntegrityError) Unwrap() error { return e.Cause }
