package webapp

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/TATR0/bot-service/internal/ports/storage"
	"github.com/gin-gonic/gin"
)

const contentTypeHTML = "text/html; charset=utf-8"

type Config struct {
	BaseURL        string `envconfig:"BASE_URL" required:"true"`               // адрес веб-формы, открывается кнопкой в Telegram
	IndexPath      string `envconfig:"INDEX_PATH" default:"webapp/index.html"` // файл на диске
	IndexObjectKey string `envconfig:"INDEX_OBJECT_KEY" default:"index.html"`  // ключ в S3, если S3 настроен
}

// Controller отдаёт стартовый документ веб-формы: из S3, если он подключён, иначе с диска
type Controller struct {
	S3        storage.IS3Client
	ObjectKey string
	IndexPath string
	Log       *slog.Logger
}

func New(s3 storage.IS3Client, cfg *Config, log *slog.Logger) *Controller {
	return &Controller{
		S3:        s3,
		ObjectKey: cfg.IndexObjectKey,
		IndexPath: cfg.IndexPath,
		Log:       log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.index)
}

func (c *Controller) index(ctx *gin.Context) {
	if c.S3 != nil {
		data, err := c.S3.GetFile(ctx.Request.Context(), c.ObjectKey)
		if err == nil {
			ctx.Data(http.StatusOK, contentTypeHTML, data)
			return
		}
		c.Log.Warn("failed to load index from s3, falling back to disk",
			"error", err,
			"key", c.ObjectKey,
		)
	}

	data, err := os.ReadFile(c.IndexPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "index not found"})
			return
		}
		c.Log.Error("failed to read index", "error", err, "path", c.IndexPath)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read index"})
		return
	}

	ctx.Data(http.StatusOK, contentTypeHTML, data)
}
