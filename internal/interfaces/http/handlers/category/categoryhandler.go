package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/category/usecases"
	"helpdesk/internal/shared/utils"
)

type CategoryHandler struct {
	listCategoriesUC usecases.ListCategoriesExecutor
}

func NewCategoryHandler(listCategoriesUC usecases.ListCategoriesExecutor) *CategoryHandler {
	return &CategoryHandler{
		listCategoriesUC: listCategoriesUC,
	}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
