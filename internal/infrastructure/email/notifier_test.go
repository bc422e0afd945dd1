package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type stubSender struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	reply   string
}

func (s *stubSender) SendTicketResolvedEmail(to, recipientName, ticketSubject, reply string) error {
	s.sent = append(s.sent, sentMail{to: to, subject: ticketSubject, reply: reply})
	return s.err
}

type stubUserRepo struct {
	user.UserRepository
	byID func(ctx context.Context, id uint) (*user.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return s.byID(ctx, id)
}

func testRecipient(t *testing.T, email string) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(3, "idp|3", "Robin", email, authorization.RoleEndUser, false, true, now, now)
	require.NoError(t, err)
	return u
}

func resolvedEvent() ticket.TicketResolvedEvent {
	return ticket.NewTicketResolvedEvent(
		42, "Printer on fire", 3, 9, "Turn it off and on again.", time.Now().UTC(),
	)
}

func TestTicketNotifier_SendsResolutionEmail(t *testing.T) {
	sender := &stubSender{}
	repo := &stubUserRepo{byID: func(ctx context.Context, id uint) (*user.User, error) {
		return testRecipient(t, "robin@example.com"), nil
	}}
	notifier := NewTicketNotifier(sender, repo, logger.NewLogger())

	err := notifier.handleResolved(resolvedEvent())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "robin@example.com", sender.sent[0].to)
	assert.Equal(t, "Printer on fire", sender.sent[0].subject)
	assert.Equal(t, "Turn it off and on again.", sender.sent[0].reply)
}

func TestTicketNotifier_SkipsCreatorWithoutEmail(t *testing.T) {
	sender := &stubSender{}
	repo := &stubUserRepo{byID: func(ctx context.Context, id uint) (*user.User, error) {
		return testRecipient(t, ""), nil
	}}
	notifier := NewTicketNotifier(sender, repo, logger.NewLogger())

	err := notifier.handleResolved(resolvedEvent())
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestTicketNotifier_PropagatesLookupFailure(t *testing.T) {
	sender := &stubSender{}
	repo := &stubUserRepo{byID: func(ctx context.Context, id uint) (*user.User, error) {
		return nil, errors.NewNotFoundError("user not found")
	}}
	notifier := NewTicketNotifier(sender, repo, logger.NewLogger())

	err := notifier.handleResolved(resolvedEvent())
	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestTicketNotifier_SendFailureIsSwallowed(t *testing.T) {
	sender := &stubSender{err: assert.AnError}
	repo := &stubUserRepo{byID: func(ctx context.Context, id uint) (*user.User, error) {
		return testRecipient(t, "robin@example.com"), nil
	}}
	notifier := NewTicketNotifier(sender, repo, logger.NewLogger())

	err := notifier.handleResolved(resolvedEvent())
	assert.NoError(t, err)
}
