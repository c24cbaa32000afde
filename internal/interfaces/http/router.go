package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ewecarreira/pedidos-api/internal/application/auth"
	"github.com/ewecarreira/pedidos-api/internal/application/customer"
	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *customer.UseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot", authHandler.Forgot)
	authGroup.Post("/refresh_token", AuthMiddleware(deps.JWTSecret), authHandler.RefreshToken)

	// Clientes: el registro es público; el resto requiere Bearer token.
	clientes := api.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	clientes.Post("/", customerHandler.Create)

	protected := clientes.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/", RequireRole(entity.RoleAdmin), customerHandler.List)
	protected.Get("/page", RequireRole(entity.RoleAdmin), customerHandler.Page)
	protected.Post("/picture", customerHandler.UploadPicture)
	protected.Get("/:id", customerHandler.GetByID)
	protected.Put("/:id", customerHandler.Update)
	protected.Delete("/:id", customerHandler.Delete)
}
