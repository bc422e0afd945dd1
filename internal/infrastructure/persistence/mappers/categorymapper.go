package mappers

import (
	"helpdesk/internal/domain/category"
	"helpdesk/internal/infrastructure/persistence/models"
)

type CategoryMapper interface {
	ToDomain(model *models.CategoryModel) (*category.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		model.Color,
		model.Active,
		millisToTime(model.CreatedAt),
	)
}
