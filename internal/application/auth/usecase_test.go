package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ewecarreira/pedidos-api/internal/application/dto"
	"github.com/ewecarreira/pedidos-api/internal/domain"
	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
	"github.com/ewecarreira/pedidos-api/internal/domain/repository"
	"github.com/ewecarreira/pedidos-api/pkg/jwt"
)

type fakeCustomerRepo struct {
	byEmail      map[string]*entity.Customer
	passwordByID map[int64]string
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byEmail:      make(map[string]*entity.Customer),
		passwordByID: make(map[int64]string),
	}
}

func (f *fakeCustomerRepo) Save(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	f.byEmail[c.Email] = c
	return c, nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	return f.byEmail[email], nil
}

func (f *fakeCustomerRepo) FindAll(_ context.Context) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) FindPage(_ context.Context, _ repository.PageRequest) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) DeleteByID(_ context.Context, _ int64) error { return nil }

func (f *fakeCustomerRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.passwordByID[id] = hash
	return nil
}

type fakeMailSender struct {
	to          string
	name        string
	newPassword string
	sent        int
}

func (f *fakeMailSender) SendNewPassword(to, name, newPassword string) error {
	f.to, f.name, f.newPassword = to, name, newPassword
	f.sent++
	return nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "pedidos-api"}
}

func seedCustomer(t *testing.T, repo *fakeCustomerRepo, password string) *entity.Customer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	c := &entity.Customer{
		ID:           3,
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		Roles:        []string{entity.RoleCliente},
	}
	repo.byEmail[c.Email] = c
	return c
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeCustomerRepo()
	seedCustomer(t, repo, "secret")
	uc := NewAuthUseCase(repo, &fakeMailSender{}, testJWTConfig())

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "maria@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, email, roles, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), userID)
	assert.Equal(t, "maria@example.com", email)
	assert.Equal(t, []string{entity.RoleCliente}, roles)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	repo := newFakeCustomerRepo()
	seedCustomer(t, repo, "secret")
	uc := NewAuthUseCase(repo, &fakeMailSender{}, testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "maria@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := NewAuthUseCase(newFakeCustomerRepo(), &fakeMailSender{}, testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email desconocido y contraseña incorrecta deben ser indistinguibles")
}

func TestRefreshToken_EmiteTokenNuevo(t *testing.T) {
	uc := NewAuthUseCase(newFakeCustomerRepo(), &fakeMailSender{}, testJWTConfig())
	p := &Principal{ID: 3, Email: "maria@example.com", Roles: []string{entity.RoleAdmin}}

	resp, err := uc.RefreshToken(p)
	require.NoError(t, err)

	userID, _, roles, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), userID)
	assert.Equal(t, []string{entity.RoleAdmin}, roles)
}

func TestRefreshToken_SinPrincipal(t *testing.T) {
	uc := NewAuthUseCase(newFakeCustomerRepo(), &fakeMailSender{}, testJWTConfig())

	_, err := uc.RefreshToken(nil)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestForgotPassword_EmailDesconocido(t *testing.T) {
	mail := &fakeMailSender{}
	uc := NewAuthUseCase(newFakeCustomerRepo(), mail, testJWTConfig())

	err := uc.ForgotPassword(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrEmailNotFound)
	assert.Zero(t, mail.sent, "no debe enviarse correo a direcciones desconocidas")
}

func TestForgotPassword_PersisteYEnviaLaNuevaContrasena(t *testing.T) {
	repo := newFakeCustomerRepo()
	c := seedCustomer(t, repo, "secret")
	mail := &fakeMailSender{}
	uc := NewAuthUseCase(repo, mail, testJWTConfig())

	err := uc.ForgotPassword(context.Background(), c.Email)
	require.NoError(t, err)

	require.Equal(t, 1, mail.sent)
	assert.Equal(t, c.Email, mail.to)
	assert.Equal(t, c.Name, mail.name)
	require.Len(t, mail.newPassword, 10)
	assert.NotEqual(t, "secret", mail.newPassword)

	// el hash persistido corresponde a la contraseña enviada
	hash := repo.passwordByID[c.ID]
	require.NotEmpty(t, hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(mail.newPassword)))
}

func TestPrincipal_HasRole(t *testing.T) {
	p := &Principal{ID: 1, Roles: []string{entity.RoleCliente}}
	assert.True(t, p.HasRole(entity.RoleCliente))
	assert.False(t, p.HasRole(entity.RoleAdmin))

	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.HasRole(entity.RoleAdmin))
}
