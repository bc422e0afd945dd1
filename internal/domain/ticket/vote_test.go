package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingVote(t *testing.T, isUpvote bool) *Vote {
	t.Helper()
	v, err := NewVote(1, 2, isUpvote)
	require.NoError(t, err)
	return v
}

func TestResolveVote(t *testing.T) {
	tests := []struct {
		name       string
		existing   *Vote
		isUpvote   bool
		wantAction VoteAction
		wantDelta  VoteDelta
	}{
		{
			name:       "first upvote",
			existing:   nil,
			isUpvote:   true,
			wantAction: VoteAdded,
			wantDelta:  VoteDelta{Upvotes: 1},
		},
		{
			name:       "first downvote",
			existing:   nil,
			isUpvote:   false,
			wantAction: VoteAdded,
			wantDelta:  VoteDelta{Downvotes: 1},
		},
		{
			name:       "upvote twice retracts",
			existing:   existingVote(t, true),
			isUpvote:   true,
			wantAction: VoteRemoved,
			wantDelta:  VoteDelta{Upvotes: -1},
		},
		{
			name:       "downvote twice retracts",
			existing:   existingVote(t, false),
			isUpvote:   false,
			wantAction: VoteRemoved,
			wantDelta:  VoteDelta{Downvotes: -1},
		},
		{
			name:       "up then down swings by two",
			existing:   existingVote(t, true),
			isUpvote:   false,
			wantAction: VoteChanged,
			wantDelta:  VoteDelta{Upvotes: -1, Downvotes: 1},
		},
		{
			name:       "down then up swings by two",
			existing:   existingVote(t, false),
			isUpvote:   true,
			wantAction: VoteChanged,
			wantDelta:  VoteDelta{Upvotes: 1, Downvotes: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, delta := ResolveVote(tt.existing, tt.isUpvote)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}

func TestResolveVote_ToggleIsNetZero(t *testing.T) {
	// Voting the same direction twice must leave the differential at the
	// baseline: +1 then -1.
	_, first := ResolveVote(nil, true)
	_, second := ResolveVote(existingVote(t, true), true)

	assert.EqualValues(t, 0, first.Upvotes+second.Upvotes)
	assert.EqualValues(t, 0, first.Downvotes+second.Downvotes)
}

func TestNewVote_Validation(t *testing.T) {
	_, err := NewVote(0, 1, true)
	require.Error(t, err)

	_, err = NewVote(1, 0, true)
	require.Error(t, err)
}

func TestVote_Flip(t *testing.T) {
	v := existingVote(t, true)
	v.Flip()
	assert.False(t, v.IsUpvote())
	v.Flip()
	assert.True(t, v.IsUpvote())
}
