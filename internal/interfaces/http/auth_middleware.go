package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ewecarreira/pedidos-api/internal/application/auth"
	"github.com/ewecarreira/pedidos-api/internal/application/dto"
	"github.com/ewecarreira/pedidos-api/pkg/jwt"
)

// Locals key para el principal autenticado en Fiber.
const localPrincipal = "principal"

// AuthMiddleware valida el Bearer token JWT y deja el Principal armado en
// c.Locals. Los handlers lo extraen con GetPrincipal y lo pasan explícito
// a los use cases.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, email, roles, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localPrincipal, &auth.Principal{ID: userID, Email: email, Roles: roles})
		return c.Next()
	}
}

// GetPrincipal devuelve el principal autenticado del contexto, o nil si la
// petición no pasó por AuthMiddleware.
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(localPrincipal).(*auth.Principal)
	return p
}

// RequireRole autoriza solo a principals con alguno de los roles dados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil || len(p.Roles) == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin roles"})
		}
		for _, role := range roles {
			if p.HasRole(role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
	}
}
