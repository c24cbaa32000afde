package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ewecarreira/pedidos-api/internal/application/customer"
	"github.com/ewecarreira/pedidos-api/pkg/config"
)

var _ customer.ObjectStorage = (*S3Storage)(nil)

// S3Storage sube objetos (fotos de perfil) a un bucket S3.
type S3Storage struct {
	bucket   string
	endpoint string
	client   *s3.Client
}

// NewS3Storage construye el cliente S3. Con Endpoint definido se usa
// path-style (MinIO o RGW local); vacío apunta al endpoint estándar de AWS.
func NewS3Storage(cfg config.S3Config) *S3Storage {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return &S3Storage{bucket: cfg.Bucket, endpoint: cfg.Endpoint, client: s3.New(opts)}
}

// Upload sube el objeto y devuelve su URI. Un nombre repetido sobreescribe
// el objeto anterior.
func (s *S3Storage) Upload(ctx context.Context, body io.Reader, objectName, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectName),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("subir objeto %s: %w", objectName, err)
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectName), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, objectName), nil
}
