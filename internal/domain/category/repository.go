package category

import "context"

type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*Category, error)
	// GetByName resolves a category by case-insensitive name match.
	GetByName(ctx context.Context, name string) (*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
}
