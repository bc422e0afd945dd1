package usecases

import (
	"context"

	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ApplyVoteCommand struct {
	TicketID uint
	UserID   uint
	IsUpvote bool
}

type ApplyVoteResult struct {
	Action ticket.VoteAction
	// Vote is the caller's vote after the toggle, "up" or "down", or nil
	// when the toggle removed it.
	Vote      *string
	Upvotes   int64
	Downvotes int64
}

// ApplyVoteUseCase implements toggle voting. The vote row mutation and the
// cached counter adjustment happen in one transaction so the counters never
// drift from the vote rows, even under concurrent toggles.
type ApplyVoteUseCase struct {
	ticketRepo  ticket.TicketRepository
	voteRepo    ticket.VoteRepository
	userRepo    user.UserRepository
	txRunner    TransactionRunner
	rateLimiter VoteRateLimiter
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewApplyVoteUseCase(
	ticketRepo ticket.TicketRepository,
	voteRepo ticket.VoteRepository,
	userRepo user.UserRepository,
	txRunner TransactionRunner,
	rateLimiter VoteRateLimiter,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *ApplyVoteUseCase {
	return &ApplyVoteUseCase{
		ticketRepo:  ticketRepo,
		voteRepo:    voteRepo,
		userRepo:    userRepo,
		txRunner:    txRunner,
		rateLimiter: rateLimiter,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *ApplyVoteUseCase) Execute(ctx context.Context, cmd ApplyVoteCommand) (*ApplyVoteResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	voter, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("unknown user")
		}
		return nil, err
	}

	caps := ticket.ResolveCapabilities(voter, nil)
	if !caps.CanVote {
		return nil, errors.NewForbiddenError("voting is not permitted for this account")
	}

	if uc.rateLimiter != nil {
		allowed, err := uc.rateLimiter.Allow(ctx, cmd.UserID)
		if err != nil {
			// The limiter is advisory. If it is unreachable the vote goes
			// through rather than blocking all voting.
			uc.logger.Warnw("vote rate limiter unavailable", "user_id", cmd.UserID, "error", err)
		} else if !allowed {
			return nil, errors.NewConflictError("vote rate limit exceeded, try again shortly")
		}
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	var (
		action ticket.VoteAction
		delta  ticket.VoteDelta
	)

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.voteRepo.GetByTicketAndUser(txCtx, cmd.TicketID, cmd.UserID)
		if err != nil {
			return err
		}

		action, delta = ticket.ResolveVote(existing, cmd.IsUpvote)

		switch action {
		case ticket.VoteAdded:
			newVote, err := ticket.NewVote(cmd.TicketID, cmd.UserID, cmd.IsUpvote)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.voteRepo.Save(txCtx, newVote); err != nil {
				if errors.IsDuplicateError(err) {
					// A concurrent request created the row first. The caller
					// can simply retry; the counters were never touched.
					return errors.NewConflictError("concurrent vote detected, please retry")
				}
				return err
			}
		case ticket.VoteRemoved:
			if err := uc.voteRepo.Delete(txCtx, existing.ID()); err != nil {
				return err
			}
		case ticket.VoteChanged:
			existing.Flip()
			if err := uc.voteRepo.Update(txCtx, existing); err != nil {
				return err
			}
		}

		return uc.ticketRepo.AdjustVoteCounters(txCtx, cmd.TicketID, delta)
	})
	if err != nil {
		uc.logger.Errorw("failed to apply vote", "ticket_id", cmd.TicketID, "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	event := ticket.NewTicketVotedEvent(cmd.TicketID, cmd.UserID, action, biztime.NowUTC())
	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish vote event", "ticket_id", cmd.TicketID, "error", err)
	}

	uc.logger.Infow("vote applied",
		"ticket_id", cmd.TicketID, "user_id", cmd.UserID, "action", action)

	var vote *string
	if action != ticket.VoteRemoved {
		direction := "down"
		if cmd.IsUpvote {
			direction = "up"
		}
		vote = &direction
	}

	return &ApplyVoteResult{
		Action:    action,
		Vote:      vote,
		Upvotes:   t.Upvotes() + delta.Upvotes,
		Downvotes: t.Downvotes() + delta.Downvotes,
	}, nil
}
