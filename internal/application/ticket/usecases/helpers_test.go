package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

const testCreatorID = uint(10)

func testTicket(t *testing.T, id uint, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	created := time.Now().UTC().Add(-time.Hour)
	tk, err := ticket.ReconstructTicket(
		id,
		"Printer on fire",
		"It is really on fire",
		status,
		vo.PriorityMedium,
		testCreatorID,
		nil,
		1,
		0, 0, 0,
		created, created,
		nil, nil,
	)
	require.NoError(t, err)
	return tk
}

func testAccount(t *testing.T, id uint, role authorization.UserRole, suspended bool) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(
		id, "ext-acc", "Taylor", "taylor@example.com",
		role, suspended, true,
		now, now,
	)
	require.NoError(t, err)
	return u
}
