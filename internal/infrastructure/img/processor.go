package img

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // registra el decoder PNG para image.Decode
	"io"

	"github.com/disintegration/imaging"

	"github.com/ewecarreira/pedidos-api/internal/application/customer"
)

var _ customer.ImageProcessor = (*Processor)(nil)

// Processor procesamiento de fotos de perfil sobre disintegration/imaging.
type Processor struct{}

// NewProcessor construye el procesador.
func NewProcessor() *Processor {
	return &Processor{}
}

// Decode decodifica los bytes a un bitmap (JPEG o PNG).
func (p *Processor) Decode(data []byte) (image.Image, error) {
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decodificar imagen: %w", err)
	}
	return decoded, nil
}

// CropSquare recorta al cuadrado centrado con lado = min(ancho, alto).
func (p *Processor) CropSquare(src image.Image) image.Image {
	bounds := src.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	return imaging.CropCenter(src, side, side)
}

// Resize escala al tamaño cuadrado objetivo.
func (p *Processor) Resize(src image.Image, size int) image.Image {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}

// EncodeJPEG codifica el bitmap a JPEG.
func (p *Processor) EncodeJPEG(src image.Image) (io.Reader, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("codificar jpeg: %w", err)
	}
	return &buf, nil
}
