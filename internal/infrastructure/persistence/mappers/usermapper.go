package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:         u.ID(),
		ExternalID: u.ExternalID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Role:       u.Role().String(),
		Suspended:  u.IsSuspended(),
		Active:     u.IsActive(),
		CreatedAt:  u.CreatedAt().UnixMilli(),
		UpdatedAt:  u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.ExternalID,
		model.Name,
		model.Email,
		authorization.ParseUserRole(model.Role),
		model.Suspended,
		model.Active,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
