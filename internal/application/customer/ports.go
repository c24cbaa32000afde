package customer

import (
	"context"
	"image"
	"io"

	"github.com/ewecarreira/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con los repos atados a la tx.
// Insert lo usa para que cliente y dirección se persistan atómicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(customers repository.CustomerRepository, addresses repository.AddressRepository) error) error
}

// Hasher puerto de hashing de contraseñas.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// ImageProcessor puerto de manipulación de la foto de perfil.
type ImageProcessor interface {
	Decode(data []byte) (image.Image, error)
	CropSquare(img image.Image) image.Image
	Resize(img image.Image, size int) image.Image
	EncodeJPEG(img image.Image) (io.Reader, error)
}

// ObjectStorage puerto de almacenamiento de objetos. Upload devuelve la URI
// resultante; un nombre repetido sobreescribe el objeto anterior.
type ObjectStorage interface {
	Upload(ctx context.Context, body io.Reader, objectName, contentType string) (string, error)
}
