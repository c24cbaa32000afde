package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ewecarreira/pedidos-api/internal/application/auth"
	"github.com/ewecarreira/pedidos-api/internal/application/dto"
	"github.com/ewecarreira/pedidos-api/internal/domain"
	"github.com/ewecarreira/pedidos-api/internal/domain/entity"
	"github.com/ewecarreira/pedidos-api/internal/domain/repository"
)

const kindCliente = "cliente"

// PayloadShape indica qué forma del payload se usa para construir el cliente.
type PayloadShape int

const (
	PayloadBasic        PayloadShape = iota // solo nombre y email (updates)
	PayloadRegistration                     // registro completo con dirección y teléfonos
)

// Config parámetros de la foto de perfil.
type Config struct {
	ProfilePrefix string // prefijo del nombre de objeto, ej. "cp"
	ProfileSize   int    // lado en píxeles de la imagen final
}

// UseCase directorio de clientes: CRUD con control de acceso, construcción
// desde payloads externos y subida de foto de perfil. La persistencia, el
// hashing, el procesamiento de imagen y el storage son colaboradores
// inyectados; el principal autenticado llega como parámetro explícito.
type UseCase struct {
	customers repository.CustomerRepository
	tx        TxRunner
	hasher    Hasher
	images    ImageProcessor
	storage   ObjectStorage
	cfg       Config
}

// NewUseCase construye el directorio de clientes.
func NewUseCase(customers repository.CustomerRepository, tx TxRunner, hasher Hasher, images ImageProcessor, storage ObjectStorage, cfg Config) *UseCase {
	return &UseCase{customers: customers, tx: tx, hasher: hasher, images: images, storage: storage, cfg: cfg}
}

// Find devuelve el cliente con el id dado. Solo un admin o el propio
// cliente pueden leerlo; cualquier otro caller recibe ErrAccessDenied.
func (uc *UseCase) Find(ctx context.Context, p *auth.Principal, id int64) (*entity.Customer, error) {
	if p == nil || (!p.HasRole(entity.RoleAdmin) && p.ID != id) {
		return nil, domain.ErrAccessDenied
	}
	customer, err := uc.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound(id, kindCliente)
	}
	return customer, nil
}

// Insert persiste un cliente nuevo junto con su primera dirección. El id
// que traiga el caller se descarta: la identidad siempre la asigna el
// store. Ambas escrituras corren en una sola transacción.
func (uc *UseCase) Insert(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if len(customer.Addresses) == 0 {
		return nil, fmt.Errorf("%w: cliente sin dirección", domain.ErrInvalidInput)
	}
	customer.ID = 0
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, addresses repository.AddressRepository) error {
		saved, err := customers.Save(ctx, customer)
		if err != nil {
			return err
		}
		address := &saved.Addresses[0]
		address.CustomerID = saved.ID
		persisted, err := addresses.Save(ctx, address)
		if err != nil {
			return err
		}
		saved.Addresses[0] = *persisted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Update re-resuelve el registro vía Find (misma regla de autorización) y
// copia únicamente nombre y email; los demás campos quedan intactos.
func (uc *UseCase) Update(ctx context.Context, p *auth.Principal, customer *entity.Customer) (*entity.Customer, error) {
	stored, err := uc.Find(ctx, p, customer.ID)
	if err != nil {
		return nil, err
	}
	stored.Name = customer.Name
	stored.Email = customer.Email
	return uc.customers.Save(ctx, stored)
}

// Delete re-resuelve vía Find y elimina por id. Si el store rechaza el
// borrado por registros dependientes (pedidos), el fallo se traduce a un
// DataIntegrityError conservando la violación original como causa.
func (uc *UseCase) Delete(ctx context.Context, p *auth.Principal, id int64) error {
	if _, err := uc.Find(ctx, p, id); err != nil {
		return err
	}
	if err := uc.customers.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrHasDependents) {
			return &domain.DataIntegrityError{
				Message: "no es posible eliminar un cliente que tiene pedidos asociados",
				Cause:   err,
			}
		}
		return err
	}
	return nil
}

// FindAll lista todos los clientes. No aplica autorización propia; el
// gate se aplica en el borde HTTP.
func (uc *UseCase) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customers.FindAll(ctx)
}

// FindPage devuelve una página de clientes ordenada por orderBy en la
// dirección dada. Una dirección fuera del enum ASC/DESC es entrada inválida.
func (uc *UseCase) FindPage(ctx context.Context, page, linesPerPage int, orderBy, direction string) ([]*entity.Customer, error) {
	dir, err := repository.ParseSortDirection(direction)
	if err != nil {
		return nil, err
	}
	return uc.customers.FindPage(ctx, repository.PageRequest{
		Page:         page,
		LinesPerPage: linesPerPage,
		OrderBy:      orderBy,
		Direction:    dir,
	})
}

// FromPayload construye un Customer (id sin asignar) desde el payload
// externo. Construcción pura: no persiste ni autoriza.
//
// PayloadBasic usa solo nombre y email. PayloadRegistration además parsea
// el tipo, hashea la contraseña, arma la dirección inline en la posición 0
// y agrega los teléfonos en orden saltando los opcionales vacíos.
func (uc *UseCase) FromPayload(in dto.CustomerPayload, shape PayloadShape) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:  in.Name,
		Email: in.Email,
	}
	if shape == PayloadBasic {
		return customer, nil
	}

	customerType, err := entity.ParseCustomerType(in.Type)
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	customer.TaxID = in.TaxID
	customer.Type = customerType
	customer.PasswordHash = hash
	customer.Roles = []string{entity.RoleCliente}
	customer.Addresses = []entity.Address{{
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		District:   in.District,
		PostalCode: in.PostalCode,
		CityID:     in.CityID,
	}}
	customer.Phones = []string{in.Phone1}
	if in.Phone2 != "" {
		customer.Phones = append(customer.Phones, in.Phone2)
	}
	if in.Phone3 != "" {
		customer.Phones = append(customer.Phones, in.Phone3)
	}
	return customer, nil
}

// UploadProfilePicture recorta la imagen al cuadrado centrado, la escala
// al tamaño configurado y la sube como <prefijo><id>.jpg. Re-subir
// sobreescribe la foto anterior; no hay versionado. Sin principal no se
// toca ningún colaborador.
func (uc *UseCase) UploadProfilePicture(ctx context.Context, p *auth.Principal, imageBytes []byte) (string, error) {
	if p == nil {
		return "", domain.ErrAccessDenied
	}
	img, err := uc.images.Decode(imageBytes)
	if err != nil {
		return "", err
	}
	img = uc.images.CropSquare(img)
	img = uc.images.Resize(img, uc.cfg.ProfileSize)
	body, err := uc.images.EncodeJPEG(img)
	if err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("%s%d.jpg", uc.cfg.ProfilePrefix, p.ID)
	return uc.storage.Upload(ctx, body, objectName, "image/jpeg")
}
