package mapper

import (
	"errors"
	"fmt"
	"time"

	"taskhub-api/internal/models"
	"taskhub-api/internal/transport/dto"
)

// ErrConfiguration marks a mapper that does not round-trip its fields.
var ErrConfiguration = errors.New("mapper configuration error")

// SelfCheck maps one sample of every entity to its DTO and back and reports the first
// pair whose shared fields do not survive. It is run once at startup.
func SelfCheck() error {
	at := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

	color := models.ItemColor{ID: 1, Name: "red", HexCode: "#ff0000"}
	if got := ItemColorFromDTO(ItemColorToDTO(&color)); got != color {
		return mismatch("ItemColor", color, got)
	}

	created := ItemColorFromCreateDTO(&dto.ItemColorCreateDTO{Name: "red", HexCode: "#ff0000"})
	if created.Name != "red" || created.HexCode != "#ff0000" {
		return mismatch("ItemColorCreateDTO", color, created)
	}

	user := models.User{ID: 2, Username: "jane", Email: "jane@example.com", CreatedAt: at}
	if got := UserFromDTO(UserToDTO(&user)); got != user {
		return mismatch("User", user, got)
	}

	rel := models.UserRelationship{
		FirstUser:  user,
		SecondUser: models.User{ID: 3, Username: "john", Email: "john@example.com", CreatedAt: at},
		Status:     models.StatusFriends,
	}
	if got := RelationshipFromDTO(RelationshipToDTO(&rel)); got != rel {
		return mismatch("UserRelationship", rel, got)
	}

	list := models.TaskList{ID: 4, OwnerID: 2, Name: "Chores", Description: "weekly", CreatedAt: at, UpdatedAt: at}
	if got := TaskListFromDTO(TaskListToDTO(&list)); got != list {
		return mismatch("TaskList", list, got)
	}
	return nil
}

func mismatch(pair string, want, got any) error {
	return fmt.Errorf("%w: %s round-trip mismatch: want %+v, got %+v", ErrConfiguration, pair, want, got)
}
