package models

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ItemColor is a named color. Name and HexCode are stored lowercase and are each unique.
type ItemColor struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	HexCode   string    `json:"hexCode" db:"hex_code"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserRelationship links an ordered pair of users. FirstUser always has the lower ID.
type UserRelationship struct {
	FirstUser  User               `json:"firstUser"`
	SecondUser User               `json:"secondUser"`
	Status     RelationshipStatus `json:"status" db:"status"`
	CreatedAt  time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" db:"updated_at"`
}

// TaskList is a named list owned by a single user.
type TaskList struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
