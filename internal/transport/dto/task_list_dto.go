package dto

import (
	"strings"
	"time"
)

// TaskListCreateDTO defines the structure for creating a task list.
type TaskListCreateDTO struct {
	Name        string `json:"name" validate:"required,tasklistname"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// Normalize trims surrounding whitespace.
func (d *TaskListCreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
}

// TaskListUpdateDTO defines the structure for a partial task list update.
type TaskListUpdateDTO struct {
	Name        *string `json:"name" validate:"omitempty,tasklistname"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Normalize trims the fields that are present.
func (d *TaskListUpdateDTO) Normalize() {
	if d.Name != nil {
		name := strings.TrimSpace(*d.Name)
		d.Name = &name
	}
	if d.Description != nil {
		description := strings.TrimSpace(*d.Description)
		d.Description = &description
	}
}

// TaskListDTO is the read model of a task list.
type TaskListDTO struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
