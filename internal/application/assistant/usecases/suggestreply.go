package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// FallbackSuggestion is returned when the completion backend is disabled,
// times out, or errors. Agents always get something to start from.
const FallbackSuggestion = "Thank you for reaching out. We are looking into your issue and will follow up shortly."

// SuggestionClient talks to the completion backend. Implementations must
// honor context cancellation.
type SuggestionClient interface {
	Complete(ctx context.Context, subject, description string) (string, error)
}

type SuggestReplyQuery struct {
	TicketID uint
	AgentID  uint
}

type SuggestReplyResult struct {
	Suggestion string
	// Generated is false when the fallback text was served.
	Generated bool
}

type SuggestReplyExecutor interface {
	Execute(ctx context.Context, query SuggestReplyQuery) (*SuggestReplyResult, error)
}

type SuggestReplyUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	client     SuggestionClient
	timeout    time.Duration
	logger     logger.Interface
}

func NewSuggestReplyUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	client SuggestionClient,
	timeout time.Duration,
	logger logger.Interface,
) *SuggestReplyUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SuggestReplyUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		client:     client,
		timeout:    timeout,
		logger:     logger,
	}
}

func (uc *SuggestReplyUseCase) Execute(ctx context.Context, query SuggestReplyQuery) (*SuggestReplyResult, error) {
	if query.AgentID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	agent, err := uc.userRepo.GetByID(ctx, query.AgentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("unknown user")
		}
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	caps := ticket.ResolveCapabilities(agent, t)
	if !caps.CanReply {
		return nil, errors.NewForbiddenError("reply suggestions are only available to support staff")
	}

	if uc.client == nil {
		return &SuggestReplyResult{Suggestion: FallbackSuggestion}, nil
	}

	genCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	suggestion, err := uc.client.Complete(genCtx, t.Subject(), t.Description())
	if err != nil || suggestion == "" {
		uc.logger.Warnw("suggestion backend failed, serving fallback",
			"ticket_id", t.ID(), "error", err)
		return &SuggestReplyResult{Suggestion: FallbackSuggestion}, nil
	}

	return &SuggestReplyResult{Suggestion: suggestion, Generated: true}, nil
}
