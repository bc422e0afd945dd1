package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	// CallerID is zero for unauthenticated viewers.
	CallerID uint
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	voteRepo    ticket.VoteRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	voteRepo ticket.VoteRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
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

	// The view counter is incremented on every read, anonymous or not. A
	// failed increment must not fail the read itself.
	if err := uc.ticketRepo.IncrementViewCount(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to increment view count", "ticket_id", t.ID(), "error", err)
	} else {
		t.RecordView()
	}

	var caller *user.User
	if query.CallerID != 0 {
		caller, err = uc.userRepo.GetByID(ctx, query.CallerID)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
	}

	caps := ticket.ResolveCapabilities(caller, t)

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket comments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	var myVote *ticket.Vote
	if caller != nil {
		myVote, err = uc.voteRepo.GetByTicketAndUser(ctx, t.ID(), caller.ID())
		if err != nil {
			uc.logger.Warnw("failed to load caller vote", "ticket_id", t.ID(), "user_id", caller.ID(), "error", err)
			myVote = nil
		}
	}

	return dto.ToTicketDTO(t, comments, caps, myVote), nil
}
