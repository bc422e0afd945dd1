package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	UserID   uint
}

type CloseTicketResult struct {
	Status   string
	ClosedAt *time.Time
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	caller, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("unknown user")
		}
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	caps := ticket.ResolveCapabilities(caller, t)
	if !caps.CanClose {
		return nil, errors.NewForbiddenError("only the ticket creator or support staff may close a ticket")
	}

	wasClosed := t.Status().IsClosed()

	if err := t.Close(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if !wasClosed {
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to close ticket", "ticket_id", t.ID(), "error", err)
			return nil, err
		}

		event := ticket.NewTicketClosedEvent(t.ID(), caller.ID(), *t.ClosedAt())
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket closed event", "ticket_id", t.ID(), "error", err)
		}

		uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "closed_by", caller.ID())
	}

	return &CloseTicketResult{
		Status:   t.Status().String(),
		ClosedAt: t.ClosedAt(),
	}, nil
}
