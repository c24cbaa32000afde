package http

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ewecarreira/pedidos-api/internal/application/customer"
	"github.com/ewecarreira/pedidos-api/internal/application/dto"
	"github.com/ewecarreira/pedidos-api/internal/domain"
	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *customer.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener cliente por id
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "id del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	found, err := h.uc.Find(c.Context(), GetPrincipal(c), id)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(toCustomerResponse(found))
}

// Create godoc
// @Summary      Registrar cliente (público)
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerPayload  true  "registro completo"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone1 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome, email, senha y telefone1 son requeridos"})
	}
	built, err := h.uc.FromPayload(in, customer.PayloadRegistration)
	if err != nil {
		return customerError(c, err)
	}
	saved, err := h.uc.Insert(c.Context(), built)
	if err != nil {
		return customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(saved))
}

// Update godoc
// @Summary      Actualizar nombre y email del cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "id del cliente"
// @Param        body  body  dto.CustomerPayload  true  "nome y email"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.CustomerPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	built, err := h.uc.FromPayload(in, customer.PayloadBasic)
	if err != nil {
		return customerError(c, err)
	}
	built.ID = id
	updated, err := h.uc.Update(c.Context(), GetPrincipal(c), built)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(toCustomerResponse(updated))
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Param        id  path  int  true  "id del cliente"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), id); err != nil {
		return customerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar todos los clientes (admin)
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.FindAll(c.Context())
	if err != nil {
		return customerError(c, err)
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, found := range list {
		out = append(out, toCustomerResponse(found))
	}
	return c.JSON(out)
}

// Page godoc
// @Summary      Listar clientes paginados (admin)
// @Tags         clientes
// @Produce      json
// @Param        page          query  int     false  "página base cero"
// @Param        linesPerPage  query  int     false  "tamaño de página"
// @Param        orderBy       query  string  false  "columna de orden"
// @Param        direction     query  string  false  "ASC o DESC"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes/page [get]
func (h *CustomerHandler) Page(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "0"))
	linesPerPage, _ := strconv.Atoi(c.Query("linesPerPage", "24"))
	orderBy := c.Query("orderBy", "nome")
	direction := c.Query("direction", "ASC")

	list, err := h.uc.FindPage(c.Context(), page, linesPerPage, orderBy, direction)
	if err != nil {
		return customerError(c, err)
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, found := range list {
		out = append(out, toCustomerResponse(found))
	}
	return c.JSON(out)
}

// UploadPicture godoc
// @Summary      Subir foto de perfil del cliente autenticado
// @Tags         clientes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "imagen JPEG o PNG"
// @Success      200   {object}  dto.UploadResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/clientes/picture [post]
func (h *CustomerHandler) UploadPicture(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo 'file' requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()
	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo leer el archivo"})
	}

	uri, err := h.uc.UploadProfilePicture(c.Context(), GetPrincipal(c), imageBytes)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(dto.UploadResponse{URI: uri})
}

// customerError traduce los errores de dominio a respuestas HTTP.
func customerError(c *fiber.Ctx, err error) error {
	var notFound *domain.NotFoundError
	var integrity *domain.DataIntegrityError
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "acceso denegado"})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound.Error()})
	case errors.As(err, &integrity):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DATA_INTEGRITY", Message: integrity.Message})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un cliente con ese email"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	out := &dto.CustomerResponse{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		TaxID:  c.TaxID,
		Type:   int(c.Type),
		Phones: c.Phones,
	}
	for _, a := range c.Addresses {
		out.Addresses = append(out.Addresses, dto.AddressResponse{
			ID:         a.ID,
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			District:   a.District,
			PostalCode: a.PostalCode,
			CityID:     a.CityID,
		})
	}
	return out
}
