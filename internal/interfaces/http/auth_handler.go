package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ewecarreira/pedidos-api/internal/application/auth"
	"github.com/ewecarreira/pedidos-api/internal/application/dto"
	"github.com/ewecarreira/pedidos-api/internal/domain"
)

// AuthHandler maneja login, refresh de token y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y senha son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Authorization", "Bearer "+out.Token)
	return c.JSON(out)
}

// RefreshToken godoc
// @Summary      Renovar el token del principal autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/auth/refresh_token [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	out, err := h.uc.RefreshToken(GetPrincipal(c))
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "acceso denegado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Authorization", "Bearer "+out.Token)
	return c.JSON(out)
}

// Forgot godoc
// @Summary      Enviar nueva contraseña por correo
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.ForgotRequest  true  "email"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/forgot [post]
func (h *AuthHandler) Forgot(c *fiber.Ctx) error {
	var in dto.ForgotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.ForgotPassword(c.Context(), in.Email); err != nil {
		if errors.Is(err, domain.ErrEmailNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMAIL_NOT_FOUND", Message: "email no registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
