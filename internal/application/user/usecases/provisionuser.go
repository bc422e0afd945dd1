package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ProvisionUserCommand struct {
	ExternalID string
	Name       string
	Email      string
	Role       string
}

type ProvisionUserResult struct {
	UserID    uint
	Role      authorization.UserRole
	Suspended bool
	Created   bool
}

type ProvisionUserExecutor interface {
	Execute(ctx context.Context, cmd ProvisionUserCommand) (*ProvisionUserResult, error)
}

// ProvisionUserUseCase maps an authenticated external identity onto a local
// account. The first request for an unknown subject creates the account;
// later requests keep the local profile in sync with the token claims.
type ProvisionUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewProvisionUserUseCase(userRepo user.UserRepository, logger logger.Interface) *ProvisionUserUseCase {
	return &ProvisionUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ProvisionUserUseCase) Execute(ctx context.Context, cmd ProvisionUserCommand) (*ProvisionUserResult, error) {
	if cmd.ExternalID == "" {
		return nil, errors.NewUnauthorizedError("missing subject claim")
	}

	role := authorization.ParseUserRole(cmd.Role)

	existing, err := uc.userRepo.GetByExternalID(ctx, cmd.ExternalID)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	if existing != nil {
		changed, err := existing.SyncProfile(cmd.Name, cmd.Email, role)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if changed {
			if err := uc.userRepo.Update(ctx, existing); err != nil {
				uc.logger.Warnw("failed to sync user profile", "user_id", existing.ID(), "error", err)
			}
		}
		return &ProvisionUserResult{
			UserID:    existing.ID(),
			Role:      existing.Role(),
			Suspended: existing.IsSuspended(),
		}, nil
	}

	newUser, err := user.NewUser(cmd.ExternalID, cmd.Name, cmd.Email, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			// Two first requests raced; the other one won. Use its row.
			raced, err := uc.userRepo.GetByExternalID(ctx, cmd.ExternalID)
			if err != nil {
				return nil, err
			}
			return &ProvisionUserResult{
				UserID:    raced.ID(),
				Role:      raced.Role(),
				Suspended: raced.IsSuspended(),
			}, nil
		}
		uc.logger.Errorw("failed to provision user", "external_id", cmd.ExternalID, "error", err)
		return nil, err
	}

	uc.logger.Infow("provisioned new user", "user_id", newUser.ID(), "external_id", cmd.ExternalID, "role", role)

	return &ProvisionUserResult{
		UserID:    newUser.ID(),
		Role:      newUser.Role(),
		Suspended: newUser.IsSuspended(),
		Created:   true,
	}, nil
}
