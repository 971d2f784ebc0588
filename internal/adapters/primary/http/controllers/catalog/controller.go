package catalog

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/TATR0/bot-service/internal/usecases/catalog"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Catalog     *catalog.Service
	Middlewares []gin.HandlerFunc
	Log         *slog.Logger
}

// New middlewares применяются только к /api (rate limit)
func New(catalogService *catalog.Service, log *slog.Logger, middlewares ...gin.HandlerFunc) *Controller {
	return &Controller{
		Catalog:     catalogService,
		Middlewares: middlewares,
		Log:         log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api", c.Middlewares...)
	api.GET("/cities", c.listCities)
	api.GET("/services", c.listServices)
}

func (c *Controller) listCities(ctx *gin.Context) {
	cities, err := c.Catalog.ListCities(ctx.Request.Context())
	if err != nil {
		c.Log.Error("failed to list cities", "error", err)
		ctx.JSON(http.StatusInternalServerError, CitiesResponse{Cities: []string{}, Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, CitiesResponse{Cities: cities})
}

func (c *Controller) listServices(ctx *gin.Context) {
	city := strings.TrimSpace(ctx.Query("city"))
	if city == "" {
		ctx.JSON(http.StatusBadRequest, ServicesResponse{Services: []ServiceDTO{}, Error: "city param required"})
		return
	}

	services, err := c.Catalog.ServicesByCity(ctx.Request.Context(), city)
	if err != nil {
		c.Log.Error("failed to list services", "error", err, "city", city)
		ctx.JSON(http.StatusInternalServerError, ServicesResponse{Services: []ServiceDTO{}, Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ServicesResponse{Services: toServiceDTOs(services)})
}
