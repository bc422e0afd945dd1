package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
}
