package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/category"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/mapper"
)

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]dto.CategoryDTO, error)
}

type ListCategoriesUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	return mapper.MapSlice(categories, func(c *category.Category) dto.CategoryDTO {
		return dto.CategoryDTO{
			ID:          c.ID(),
			Name:        c.Name(),
			Description: c.Description(),
			Color:       c.Color(),
		}
	}), nil
}
