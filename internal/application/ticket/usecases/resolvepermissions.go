package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ResolvePermissionsQuery struct {
	TicketID uint
	// CallerID is zero for unauthenticated callers, who get an empty
	// capability set rather than an error.
	CallerID uint
}

type ResolvePermissionsResult struct {
	Capabilities ticket.Capabilities
}

type ResolvePermissionsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewResolvePermissionsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ResolvePermissionsUseCase {
	return &ResolvePermissionsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ResolvePermissionsUseCase) Execute(ctx context.Context, query ResolvePermissionsQuery) (*ResolvePermissionsResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	var caller *user.User
	if query.CallerID != 0 {
		caller, err = uc.userRepo.GetByID(ctx, query.CallerID)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
	}

	return &ResolvePermissionsResult{
		Capabilities: ticket.ResolveCapabilities(caller, t),
	}, nil
}
