package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// RelationshipStatus is the single state held by an ordered user pair (first, second).
type RelationshipStatus string

const (
	StatusPendingFirstSecond RelationshipStatus = "PENDING_FIRST_SECOND" // first sent a request to second
	StatusPendingSecondFirst RelationshipStatus = "PENDING_SECOND_FIRST" // second sent a request to first
	StatusFriends            RelationshipStatus = "FRIENDS"
	StatusBlockFirstSecond   RelationshipStatus = "BLOCK_FIRST_SECOND" // first blocked second
	StatusBlockSecondFirst   RelationshipStatus = "BLOCK_SECOND_FIRST" // second blocked first
	StatusBlockBoth          RelationshipStatus = "BLOCK_BOTH"
)

// Valid reports whether s is one of the six known statuses.
func (s RelationshipStatus) Valid() bool {
	switch s {
	case StatusPendingFirstSecond, StatusPendingSecondFirst, StatusFriends,
		StatusBlockFirstSecond, StatusBlockSecondFirst, StatusBlockBoth:
		return true
	}
	return false
}

// IsBlock reports whether any side of the pair has blocked the other.
func (s RelationshipStatus) IsBlock() bool {
	return s == StatusBlockFirstSecond || s == StatusBlockSecondFirst || s == StatusBlockBoth
}

// Scan implements the sql.Scanner interface for RelationshipStatus
func (s *RelationshipStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan RelationshipStatus: value is not string or []byte")
		}
	}
	v := RelationshipStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid RelationshipStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for RelationshipStatus
func (s RelationshipStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// RelationshipAction is something one user does to the relationship with another.
type RelationshipAction string

const (
	ActionRequest RelationshipAction = "request"
	ActionAccept  RelationshipAction = "accept"
	ActionRemove  RelationshipAction = "remove"
	ActionBlock   RelationshipAction = "block"
	ActionUnblock RelationshipAction = "unblock"
)

var (
	ErrNoRelationship     = errors.New("no relationship between users")
	ErrRelationshipExists = errors.New("relationship already in requested state")
	ErrRelationshipBlock  = errors.New("relationship is blocked")
	ErrInvalidTransition  = errors.New("invalid relationship transition")
)

// Transition is the outcome of applying an action. When Delete is set the pair's row is
// removed and Status is empty.
type Transition struct {
	Status RelationshipStatus
	Delete bool
}

// OrderPair returns the two user IDs in storage order and whether a is the first user.
func OrderPair(a, b int64) (first, second int64, aIsFirst bool) {
	if a < b {
		return a, b, true
	}
	return b, a, false
}

// perspective names the statuses from the acting user's point of view.
type perspective struct {
	pendingOut, pendingIn, blockOut, blockIn RelationshipStatus
}

func perspectiveOf(actorIsFirst bool) perspective {
	if actorIsFirst {
		return perspective{StatusPendingFirstSecond, StatusPendingSecondFirst, StatusBlockFirstSecond, StatusBlockSecondFirst}
	}
	return perspective{StatusPendingSecondFirst, StatusPendingFirstSecond, StatusBlockSecondFirst, StatusBlockFirstSecond}
}

// NextStatus applies action by the actor to the pair's current status (nil when the pair
// has no row). It never mutates anything; callers persist the returned Transition.
func NextStatus(current *RelationshipStatus, actorIsFirst bool, action RelationshipAction) (Transition, error) {
	p := perspectiveOf(actorIsFirst)

	if current == nil {
		switch action {
		case ActionRequest:
			return Transition{Status: p.pendingOut}, nil
		case ActionBlock:
			return Transition{Status: p.blockOut}, nil
		case ActionRemove:
			return Transition{}, ErrNoRelationship
		case ActionAccept, ActionUnblock:
			return Transition{}, ErrInvalidTransition
		}
		return Transition{}, fmt.Errorf("unknown relationship action %q", action)
	}

	cur := *current
	switch action {
	case ActionRequest:
		switch {
		case cur.IsBlock():
			return Transition{}, ErrRelationshipBlock
		case cur == p.pendingIn:
			return Transition{Status: StatusFriends}, nil
		default: // pending out or already friends
			return Transition{}, ErrRelationshipExists
		}
	case ActionAccept:
		switch {
		case cur.IsBlock():
			return Transition{}, ErrRelationshipBlock
		case cur == p.pendingIn:
			return Transition{Status: StatusFriends}, nil
		default:
			return Transition{}, ErrInvalidTransition
		}
	case ActionRemove:
		if cur.IsBlock() {
			return Transition{}, ErrInvalidTransition
		}
		return Transition{Delete: true}, nil
	case ActionBlock:
		switch cur {
		case p.blockOut, StatusBlockBoth:
			return Transition{}, ErrRelationshipExists
		case p.blockIn:
			return Transition{Status: StatusBlockBoth}, nil
		default:
			return Transition{Status: p.blockOut}, nil
		}
	case ActionUnblock:
		switch cur {
		case p.blockOut:
			return Transition{Delete: true}, nil
		case StatusBlockBoth:
			return Transition{Status: p.blockIn}, nil
		default:
			return Transition{}, ErrInvalidTransition
		}
	}
	return Transition{}, fmt.Errorf("unknown relationship action %q", action)
}
