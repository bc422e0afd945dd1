package ticket

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
)

// Capabilities is the per-request capability set for a caller against a
// ticket. It is recomputed on every request and never cached, since role,
// ownership, and suspension can all change between requests.
type Capabilities struct {
	CanVote  bool                   `json:"can_vote"`
	CanReply bool                   `json:"can_reply"`
	CanClose bool                   `json:"can_close"`
	IsOwner  bool                   `json:"is_owner"`
	Role     authorization.UserRole `json:"role,omitempty"`
}

// ResolveCapabilities derives the capability set for caller u against ticket
// t. Either argument may be nil: a nil caller yields no capabilities, a nil
// ticket resolves the ticket-independent capabilities only (ownership-based
// close cannot be granted without a ticket).
//
// A ticket creator may vote on their own ticket; no self-vote restriction is
// enforced.
func ResolveCapabilities(u *user.User, t *Ticket) Capabilities {
	if u == nil {
		return Capabilities{}
	}

	caps := Capabilities{
		Role: u.Role(),
	}

	caps.CanVote = !u.IsSuspended()
	caps.CanReply = u.Role().IsStaff()

	if t != nil {
		caps.IsOwner = t.CreatorID() == u.ID()
	}

	caps.CanClose = caps.IsOwner || u.Role().IsStaff()

	return caps
}
