// Package category holds the ticket category reference data. Categories are
// read-only from this service's perspective; management is an administrative
// concern handled elsewhere.
package category

import (
	"fmt"
	"time"
)

type Category struct {
	id          uint
	name        string
	description string
	color       string
	active      bool
	createdAt   time.Time
}

func ReconstructCategory(
	id uint,
	name string,
	description string,
	color string,
	active bool,
	createdAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		color:       color,
		active:      active,
		createdAt:   createdAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) Color() string {
	return c.color
}

func (c *Category) IsActive() bool {
	return c.active
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}
