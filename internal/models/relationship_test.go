package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s RelationshipStatus) *RelationshipStatus { return &s }

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name         string
		current      *RelationshipStatus
		actorIsFirst bool
		action       RelationshipAction
		want         Transition
		wantErr      error
	}{
		{"request from nothing (first)", nil, true, ActionRequest, Transition{Status: StatusPendingFirstSecond}, nil},
		{"request from nothing (second)", nil, false, ActionRequest, Transition{Status: StatusPendingSecondFirst}, nil},
		{"request twice", statusPtr(StatusPendingFirstSecond), true, ActionRequest, Transition{}, ErrRelationshipExists},
		{"crossing request befriends", statusPtr(StatusPendingFirstSecond), false, ActionRequest, Transition{Status: StatusFriends}, nil},
		{"request while friends", statusPtr(StatusFriends), true, ActionRequest, Transition{}, ErrRelationshipExists},
		{"request while blocked", statusPtr(StatusBlockSecondFirst), true, ActionRequest, Transition{}, ErrRelationshipBlock},

		{"accept incoming", statusPtr(StatusPendingSecondFirst), true, ActionAccept, Transition{Status: StatusFriends}, nil},
		{"accept own request", statusPtr(StatusPendingFirstSecond), true, ActionAccept, Transition{}, ErrInvalidTransition},
		{"accept nothing", nil, true, ActionAccept, Transition{}, ErrInvalidTransition},
		{"accept while blocked", statusPtr(StatusBlockBoth), false, ActionAccept, Transition{}, ErrRelationshipBlock},

		{"remove friends", statusPtr(StatusFriends), false, ActionRemove, Transition{Delete: true}, nil},
		{"cancel own request", statusPtr(StatusPendingSecondFirst), false, ActionRemove, Transition{Delete: true}, nil},
		{"decline incoming", statusPtr(StatusPendingSecondFirst), true, ActionRemove, Transition{Delete: true}, nil},
		{"remove nothing", nil, true, ActionRemove, Transition{}, ErrNoRelationship},
		{"remove block", statusPtr(StatusBlockFirstSecond), true, ActionRemove, Transition{}, ErrInvalidTransition},

		{"block from nothing", nil, false, ActionBlock, Transition{Status: StatusBlockSecondFirst}, nil},
		{"block friend", statusPtr(StatusFriends), true, ActionBlock, Transition{Status: StatusBlockFirstSecond}, nil},
		{"block back", statusPtr(StatusBlockFirstSecond), false, ActionBlock, Transition{Status: StatusBlockBoth}, nil},
		{"block twice", statusPtr(StatusBlockFirstSecond), true, ActionBlock, Transition{}, ErrRelationshipExists},
		{"block when both", statusPtr(StatusBlockBoth), true, ActionBlock, Transition{}, ErrRelationshipExists},

		{"unblock own block", statusPtr(StatusBlockSecondFirst), false, ActionUnblock, Transition{Delete: true}, nil},
		{"unblock from both", statusPtr(StatusBlockBoth), true, ActionUnblock, Transition{Status: StatusBlockSecondFirst}, nil},
		{"unblock other's block", statusPtr(StatusBlockSecondFirst), true, ActionUnblock, Transition{}, ErrInvalidTransition},
		{"unblock friends", statusPtr(StatusFriends), true, ActionUnblock, Transition{}, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.current, tt.actorIsFirst, tt.action)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if !got.Delete {
				assert.True(t, got.Status.Valid())
			}
		})
	}
}

func TestNextStatus_UnknownAction(t *testing.T) {
	_, err := NextStatus(nil, true, RelationshipAction("poke"))
	assert.Error(t, err)
	_, err = NextStatus(statusPtr(StatusFriends), true, RelationshipAction("poke"))
	assert.Error(t, err)
}

func TestOrderPair(t *testing.T) {
	first, second, aIsFirst := OrderPair(7, 3)
	assert.Equal(t, int64(3), first)
	assert.Equal(t, int64(7), second)
	assert.False(t, aIsFirst)

	first, second, aIsFirst = OrderPair(1, 2)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.True(t, aIsFirst)
}

func TestRelationshipStatus_Scan(t *testing.T) {
	var s RelationshipStatus
	require.NoError(t, s.Scan("FRIENDS"))
	assert.Equal(t, StatusFriends, s)

	require.NoError(t, s.Scan([]byte("BLOCK_BOTH")))
	assert.Equal(t, StatusBlockBoth, s)

	assert.Error(t, s.Scan("ENEMIES"))
	assert.Error(t, s.Scan(42))

	v, err := StatusPendingFirstSecond.Value()
	require.NoError(t, err)
	assert.Equal(t, "PENDING_FIRST_SECOND", v)
}
