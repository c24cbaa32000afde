package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse salida con el token JWT.
type LoginResponse struct {
	Token string `json:"token"`
}

// ForgotRequest entrada para el flujo de recuperación de contraseña.
type ForgotRequest struct {
	Email string `json:"email" validate:"required,email"`
}
