package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ewecarreira/pedidos-api/internal/application/dto"
	"github.com/ewecarreira/pedidos-api/internal/domain"
	"github.com/ewecarreira/pedidos-api/internal/domain/repository"
	"github.com/ewecarreira/pedidos-api/pkg/jwt"
)

// MailSender puerto de correo para el flujo de recuperación de contraseña.
type MailSender interface {
	SendNewPassword(to, name, newPassword string) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, refresh de token y
// recuperación de contraseña por correo.
type AuthUseCase struct {
	customers repository.CustomerRepository
	mail      MailSender
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(customers repository.CustomerRepository, mail MailSender, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{customers: customers, mail: mail, jwtCfg: jwtCfg}
}

// Login verifica email/contraseña y genera el JWT con id, email y roles.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	customer, err := uc.customers.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, customer.ID, customer.Email, customer.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// RefreshToken emite un token nuevo para un principal ya autenticado.
func (uc *AuthUseCase) RefreshToken(p *Principal) (*dto.LoginResponse, error) {
	if p == nil {
		return nil, domain.ErrAccessDenied
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, p.ID, p.Email, p.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// ForgotPassword genera una contraseña nueva, persiste su hash y la envía
// por correo al cliente. Si el correo falla el error se propaga; no hay
// reintentos en esta capa.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	customer, err := uc.customers.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrEmailNotFound
	}
	newPassword := generatePassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.customers.UpdatePassword(ctx, customer.ID, string(hash)); err != nil {
		return err
	}
	return uc.mail.SendNewPassword(customer.Email, customer.Name, newPassword)
}

// generatePassword crea una contraseña temporal de un solo uso.
func generatePassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}
