package routes

import (
	"github.com/gin-gonic/gin"

	categoryhandlers "helpdesk/internal/interfaces/http/handlers/category"
)

type CategoryRouteConfig struct {
	CategoryHandler *categoryhandlers.CategoryHandler
}

// SetupCategoryRoutes configures the category catalog routes. The catalog is
// public; tickets reference categories by ID.
func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/categories")
	{
		categories.GET("", config.CategoryHandler.ListCategories)
	}
}
