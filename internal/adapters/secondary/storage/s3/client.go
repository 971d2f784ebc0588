package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/TATR0/bot-service/internal/ports/storage"
	"github.com/minio/minio-go/v7"
)

var _ storage.IS3Client = (*Client)(nil)

// Client обёртка над minio.Client для работы с S3
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

// NewClient создаёт новый S3 клиент
func NewClient(client *minio.Client, bucket string, log *slog.Logger) *Client {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// GetFile получает файл по пути
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", path, err)
	}

	c.log.Debug("object fetched", "bucket", c.bucket, "path", path, "size", len(data))
	return data, nil
}
