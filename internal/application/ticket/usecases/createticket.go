package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateTicketCommand struct {
	Subject     string
	Description string
	CategoryID  uint
	Category    string
	Priority    string
	CreatorID   uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo category.CategoryRepository
	dispatcher   events.EventPublisher
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo category.CategoryRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	cat, err := uc.resolveCategory(ctx, cmd)
	if err != nil {
		return nil, err
	}

	subject := utils.SanitizeUserContent(cmd.Subject)
	description := utils.SanitizeUserContent(cmd.Description)

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	newTicket, err := ticket.NewTicket(subject, description, cat.ID(), priority, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	event := ticket.NewTicketCreatedEvent(
		newTicket.ID(), newTicket.Subject(), newTicket.CreatorID(),
		newTicket.Priority().String(), newTicket.CreatedAt(),
	)
	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "ticket_id", newTicket.ID(), "error", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) resolveCategory(ctx context.Context, cmd CreateTicketCommand) (*category.Category, error) {
	var (
		cat *category.Category
		err error
	)

	if cmd.CategoryID != 0 {
		cat, err = uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	} else {
		cat, err = uc.categoryRepo.GetByName(ctx, cmd.Category)
	}
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("unknown category")
		}
		uc.logger.Errorw("failed to resolve category", "error", err)
		return nil, err
	}

	if !cat.IsActive() {
		return nil, errors.NewValidationError("category is not accepting new tickets")
	}

	return cat, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}

	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.CreatorID == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}

	if cmd.CategoryID == 0 && cmd.Category == "" {
		return errors.NewValidationError("category is required")
	}

	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
