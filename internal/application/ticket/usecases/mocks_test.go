package usecases

import (
	"context"

	"helpdesk/internal/domain/category"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc            func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc               func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	IncrementViewCountFunc func(ctx context.Context, ticketID uint) error
	AdjustVoteCountersFunc func(ctx context.Context, ticketID uint, delta ticket.VoteDelta) error
	GetStatusCountsFunc    func(ctx context.Context) (ticket.StatusCounts, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) IncrementViewCount(ctx context.Context, ticketID uint) error {
	if m.IncrementViewCountFunc != nil {
		return m.IncrementViewCountFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) AdjustVoteCounters(ctx context.Context, ticketID uint, delta ticket.VoteDelta) error {
	if m.AdjustVoteCountersFunc != nil {
		return m.AdjustVoteCountersFunc(ctx, ticketID, delta)
	}
	return nil
}

func (m *mockTicketRepository) GetStatusCounts(ctx context.Context) (ticket.StatusCounts, error) {
	if m.GetStatusCountsFunc != nil {
		return m.GetStatusCountsFunc(ctx)
	}
	return ticket.StatusCounts{}, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockVoteRepository struct {
	SaveFunc               func(ctx context.Context, vote *ticket.Vote) error
	UpdateFunc             func(ctx context.Context, vote *ticket.Vote) error
	DeleteFunc             func(ctx context.Context, voteID uint) error
	GetByTicketAndUserFunc func(ctx context.Context, ticketID, userID uint) (*ticket.Vote, error)
	GetByTicketFunc        func(ctx context.Context, ticketID uint) ([]*ticket.Vote, error)
}

func (m *mockVoteRepository) Save(ctx context.Context, vote *ticket.Vote) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, vote)
	}
	return nil
}

func (m *mockVoteRepository) Update(ctx context.Context, vote *ticket.Vote) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, vote)
	}
	return nil
}

func (m *mockVoteRepository) Delete(ctx context.Context, voteID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, voteID)
	}
	return nil
}

func (m *mockVoteRepository) GetByTicketAndUser(ctx context.Context, ticketID, userID uint) (*ticket.Vote, error) {
	if m.GetByTicketAndUserFunc != nil {
		return m.GetByTicketAndUserFunc(ctx, ticketID, userID)
	}
	return nil, nil
}

func (m *mockVoteRepository) GetByTicket(ctx context.Context, ticketID uint) ([]*ticket.Vote, error) {
	if m.GetByTicketFunc != nil {
		return m.GetByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc            func(ctx context.Context, u *user.User) error
	UpdateFunc          func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	GetByExternalIDFunc func(ctx context.Context, externalID string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	if m.GetByExternalIDFunc != nil {
		return m.GetByExternalIDFunc(ctx, externalID)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	GetByIDFunc    func(ctx context.Context, id uint) (*category.Category, error)
	GetByNameFunc  func(ctx context.Context, name string) (*category.Category, error)
	ListActiveFunc func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

// mockTxRunner runs the function inline without a real transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockRateLimiter struct {
	AllowFunc func(ctx context.Context, userID uint) (bool, error)
}

func (m *mockRateLimiter) Allow(ctx context.Context, userID uint) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, userID)
	}
	return true, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
