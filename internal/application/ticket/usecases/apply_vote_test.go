package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

// voteLedger is an in-memory stand-in for the vote store so toggle sequences
// can be exercised end to end through the use case.
type voteLedger struct {
	vote      *ticket.Vote
	upvotes   int64
	downvotes int64
	nextID    uint
}

func newVoteHarness(t *testing.T, existing *ticket.Vote) (*ApplyVoteUseCase, *voteLedger) {
	t.Helper()

	ledger := &voteLedger{vote: existing, nextID: 100}

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return testTicket(t, ticketID, vo.StatusOpen), nil
		},
		AdjustVoteCountersFunc: func(ctx context.Context, ticketID uint, delta ticket.VoteDelta) error {
			ledger.upvotes += delta.Upvotes
			ledger.downvotes += delta.Downvotes
			return nil
		},
	}

	voteRepo := &mockVoteRepository{
		GetByTicketAndUserFunc: func(ctx context.Context, ticketID, userID uint) (*ticket.Vote, error) {
			return ledger.vote, nil
		},
		SaveFunc: func(ctx context.Context, v *ticket.Vote) error {
			ledger.nextID++
			require.NoError(t, v.SetID(ledger.nextID))
			ledger.vote = v
			return nil
		},
		UpdateFunc: func(ctx context.Context, v *ticket.Vote) error {
			ledger.vote = v
			return nil
		},
		DeleteFunc: func(ctx context.Context, voteID uint) error {
			ledger.vote = nil
			return nil
		},
	}

	accounts := &mockUserRepository{
		GetByIDFunc: voterLookup(t, false),
	}

	uc := NewApplyVoteUseCase(
		ticketRepo, voteRepo, accounts,
		&mockTxRunner{}, &mockRateLimiter{}, &mockEventPublisher{}, &mockLogger{},
	)
	return uc, ledger
}

func TestApplyVoteUseCase_ToggleSequence(t *testing.T) {
	uc, ledger := newVoteHarness(t, nil)
	ctx := context.Background()

	// First upvote lands.
	result, err := uc.Execute(ctx, ApplyVoteCommand{TicketID: 1, UserID: 20, IsUpvote: true})
	require.NoError(t, err)
	assert.Equal(t, ticket.VoteAdded, result.Action)
	require.NotNil(t, result.Vote)
	assert.Equal(t, "up", *result.Vote)
	assert.EqualValues(t, 1, ledger.upvotes)
	assert.EqualValues(t, 0, ledger.downvotes)

	// Same vote again retracts it; net change is zero.
	result, err = uc.Execute(ctx, ApplyVoteCommand{TicketID: 1, UserID: 20, IsUpvote: true})
	require.NoError(t, err)
	assert.Equal(t, ticket.VoteRemoved, result.Action)
	assert.Nil(t, result.Vote)
	assert.EqualValues(t, 0, ledger.upvotes)
	assert.EqualValues(t, 0, ledger.downvotes)
	assert.Nil(t, ledger.vote)
}

func TestApplyVoteUseCase_SwitchPolarity(t *testing.T) {
	existing, err := ticket.ReconstructVote(50, 1, 20, true, testTicket(t, 1, vo.StatusOpen).CreatedAt())
	require.NoError(t, err)

	uc, ledger := newVoteHarness(t, existing)
	ledger.upvotes = 1

	result, err := uc.Execute(context.Background(), ApplyVoteCommand{TicketID: 1, UserID: 20, IsUpvote: false})
	require.NoError(t, err)

	assert.Equal(t, ticket.VoteChanged, result.Action)
	require.NotNil(t, result.Vote)
	assert.Equal(t, "down", *result.Vote)
	assert.EqualValues(t, 0, ledger.upvotes)
	assert.EqualValues(t, 1, ledger.downvotes)
	require.NotNil(t, ledger.vote)
	assert.False(t, ledger.vote.IsUpvote())
}

func TestApplyVoteUseCase_Unauthenticated(t *testing.T) {
	uc, _ := newVoteHarness(t, nil)

	_, err := uc.Execute(context.Background(), ApplyVoteCommand{TicketID: 1, UserID: 0, IsUpvote: true})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestApplyVoteUseCase_SuspendedUserForbidden(t *testing.T) {
	ticketRepo := &mockTicketRepository{}
	voteRepo := &mockVoteRepository{}
	accounts := &mockUserRepository{
		GetByIDFunc: voterLookup(t, true),
	}

	uc := NewApplyVoteUseCase(
		ticketRepo, voteRepo, accounts,
		&mockTxRunner{}, &mockRateLimiter{}, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), ApplyVoteCommand{TicketID: 1, UserID: 20, IsUpvote: true})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestApplyVoteUseCase_RateLimited(t *testing.T) {
	accounts := &mockUserRepository{GetByIDFunc: voterLookup(t, false)}
	limiter := &mockRateLimiter{
		AllowFunc: func(ctx context.Context, userID uint) (bool, error) {
			return false, nil
		},
	}

	uc := NewApplyVoteUseCase(
		&mockTicketRepository{}, &mockVoteRepository{}, accounts,
		&mockTxRunner{}, limiter, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), ApplyVoteCommand{TicketID: 1, UserID: 20, IsUpvote: true})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestApplyVoteUseCase_TicketNotFound(t *testing.T) {
	accounts := &mockUserRepository{GetByIDFunc: voterLookup(t, false)}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, nil
		},
	}

	uc := NewApplyVoteUseCase(
		ticketRepo, &mockVoteRepository{}, accounts,
		&mockTxRunner{}, &mockRateLimiter{}, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), ApplyVoteCommand{TicketID: 404, UserID: 20, IsUpvote: true})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestApplyVoteUseCase_DuplicateInsertBecomesConflict(t *testing.T) {
	accounts := &mockUserRepository{GetByIDFunc: voterLookup(t, false)}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return testTicket(t, ticketID, vo.StatusOpen), nil
		},
	}
	voteRepo := &mockVoteRepository{
		SaveFunc: func(ctx context.Context, v *ticket.Vote) error {
			return errDuplicate{}
		},
	}

	uc := NewApplyVoteUseCase(
		ticketRepo, voteRepo, accounts,
		&mockTxRunner{}, &mockRateLimiter{}, &mockEventPublisher{}, &mockLogger{},
	)

	_, err := uc.Execute(context.Background(), ApplyVoteCommand{TicketID: 1, UserID: 20, IsUpvote: true})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

type errDuplicate struct{}

func (errDuplicate) Error() string { return "UNIQUE constraint failed: ticket_votes.ticket_id" }

func voterLookup(t *testing.T, suspended bool) func(ctx context.Context, id uint) (*user.User, error) {
	t.Helper()
	return func(ctx context.Context, id uint) (*user.User, error) {
		return testAccount(t, id, authorization.RoleEndUser, suspended), nil
	}
}
