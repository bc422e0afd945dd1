package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

func testUser(t *testing.T, id uint, role authorization.UserRole, suspended bool) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(
		id, "ext-1", "Alice", "alice@example.com",
		role, suspended, true,
		now, now,
	)
	require.NoError(t, err)
	return u
}

func TestResolveCapabilities_NilCaller(t *testing.T) {
	ticket := newValidTicket(t)

	caps := ResolveCapabilities(nil, ticket)

	assert.Equal(t, Capabilities{}, caps)
}

func TestResolveCapabilities(t *testing.T) {
	ticket := newValidTicket(t) // creator ID is 10

	tests := []struct {
		name string
		u    *user.User
		want Capabilities
	}{
		{
			name: "end user who is not the creator",
			u:    testUser(t, 99, authorization.RoleEndUser, false),
			want: Capabilities{
				CanVote: true,
				Role:    authorization.RoleEndUser,
			},
		},
		{
			name: "end user who created the ticket can close it",
			u:    testUser(t, 10, authorization.RoleEndUser, false),
			want: Capabilities{
				CanVote:  true,
				CanClose: true,
				IsOwner:  true,
				Role:     authorization.RoleEndUser,
			},
		},
		{
			name: "support agent can reply and close",
			u:    testUser(t, 99, authorization.RoleSupportAgent, false),
			want: Capabilities{
				CanVote:  true,
				CanReply: true,
				CanClose: true,
				Role:     authorization.RoleSupportAgent,
			},
		},
		{
			name: "admin can reply and close",
			u:    testUser(t, 99, authorization.RoleAdmin, false),
			want: Capabilities{
				CanVote:  true,
				CanReply: true,
				CanClose: true,
				Role:     authorization.RoleAdmin,
			},
		},
		{
			name: "suspended user cannot vote",
			u:    testUser(t, 99, authorization.RoleEndUser, true),
			want: Capabilities{
				Role: authorization.RoleEndUser,
			},
		},
		{
			name: "suspended agent still replies and closes",
			u:    testUser(t, 99, authorization.RoleSupportAgent, true),
			want: Capabilities{
				CanReply: true,
				CanClose: true,
				Role:     authorization.RoleSupportAgent,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCapabilities(tt.u, ticket))
		})
	}
}

func TestResolveCapabilities_NilTicket(t *testing.T) {
	// Without a ticket there is no ownership, so an end user gets no close
	// capability even if they own tickets elsewhere.
	u := testUser(t, 7, authorization.RoleEndUser, false)

	caps := ResolveCapabilities(u, nil)

	assert.True(t, caps.CanVote)
	assert.False(t, caps.IsOwner)
	assert.False(t, caps.CanClose)

	// Staff close capability is role based and survives the nil ticket.
	agent := testUser(t, 8, authorization.RoleSupportAgent, false)
	assert.True(t, ResolveCapabilities(agent, nil).CanClose)
}
