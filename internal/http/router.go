package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.StoreChecker, cfg.Backend, cfg.Version)
	versesController := NewVersesController(cfg.Store)
	booksController := NewBooksController(cfg.Store)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.GET("/verses", versesController.List)
		api.POST("/verses", versesController.Create)
		api.POST("/verses/batch", versesController.CreateBatch)
		api.DELETE("/verses", versesController.DeleteAll)
		api.GET("/verses/:id", versesController.Get)

		api.GET("/books", booksController.List)
	}

	return router
}
