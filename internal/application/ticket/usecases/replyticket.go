package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ReplyTicketCommand struct {
	TicketID uint
	AuthorID uint
	Content  string
	// IsInternal marks a staff-only note. Internal notes do not change the
	// ticket status; only replies visible to the creator resolve it.
	IsInternal bool
}

type ReplyTicketResult struct {
	CommentID  uint
	Status     string
	ResolvedAt *time.Time
}

// ReplyTicketUseCase posts a staff reply. A visible reply always moves the
// ticket to resolved, whatever its current status, including reopening a
// closed ticket into resolved.
type ReplyTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.UserRepository
	txRunner    TransactionRunner
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewReplyTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.UserRepository,
	txRunner TransactionRunner,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *ReplyTicketUseCase {
	return &ReplyTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		txRunner:    txRunner,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *ReplyTicketUseCase) Execute(ctx context.Context, cmd ReplyTicketCommand) (*ReplyTicketResult, error) {
	if cmd.AuthorID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	content := utils.SanitizeUserContent(cmd.Content)
	if content == "" {
		return nil, errors.NewValidationError("reply content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, errors.NewValidationError("reply exceeds maximum length of 5000 characters")
	}

	author, err := uc.userRepo.GetByID(ctx, cmd.AuthorID)
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

	caps := ticket.ResolveCapabilities(author, t)
	if !caps.CanReply {
		return nil, errors.NewForbiddenError("only support staff may reply to tickets")
	}

	comment, err := ticket.NewComment(t.ID(), author.ID(), content, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	resolved := false
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}

		if cmd.IsInternal {
			return nil
		}

		t.ResolveByReply()
		resolved = true
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to save reply", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if resolved {
		event := ticket.NewTicketResolvedEvent(
			t.ID(), t.Subject(), t.CreatorID(), author.ID(), content, *t.ResolvedAt(),
		)
		if err := uc.dispatcher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish ticket resolved event", "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("reply posted",
		"ticket_id", t.ID(), "author_id", author.ID(), "internal", cmd.IsInternal, "status", t.Status())

	return &ReplyTicketResult{
		CommentID:  comment.ID(),
		Status:     t.Status().String(),
		ResolvedAt: t.ResolvedAt(),
	}, nil
}
