// Package mapper converts between persistence entities and transfer objects.
// Every entity/DTO pair has its own pair of functions; fields without a counterpart
// are left at their zero value and nothing is validated here.
package mapper

import (
	"taskhub-api/internal/models"
	"taskhub-api/internal/transport/dto"
)

// ItemColorToDTO converts a persisted item color to its read model.
func ItemColorToDTO(c *models.ItemColor) dto.ItemColorDTO {
	return dto.ItemColorDTO{
		ID:      c.ID,
		Name:    c.Name,
		HexCode: c.HexCode,
	}
}

// ItemColorFromDTO converts a read model back to an entity (timestamps stay zero).
func ItemColorFromDTO(d dto.ItemColorDTO) models.ItemColor {
	return models.ItemColor{
		ID:      d.ID,
		Name:    d.Name,
		HexCode: d.HexCode,
	}
}

// ItemColorFromCreateDTO builds an unsaved entity from a validated, normalized request.
func ItemColorFromCreateDTO(d *dto.ItemColorCreateDTO) models.ItemColor {
	return models.ItemColor{
		Name:    d.Name,
		HexCode: d.HexCode,
	}
}

// ItemColorsToDTO maps a slice, never returning nil.
func ItemColorsToDTO(colors []models.ItemColor) []dto.ItemColorDTO {
	out := make([]dto.ItemColorDTO, 0, len(colors))
	for i := range colors {
		out = append(out, ItemColorToDTO(&colors[i]))
	}
	return out
}

// UserToDTO converts a user to its public representation. The password hash is dropped.
func UserToDTO(u *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UserFromDTO converts a public user back to an entity without credentials.
func UserFromDTO(d dto.UserDTO) models.User {
	return models.User{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
	}
}

// UsersToDTO maps a slice, never returning nil.
func UsersToDTO(users []models.User) []dto.UserDTO {
	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, UserToDTO(&users[i]))
	}
	return out
}

// RelationshipToDTO converts a relationship with both users loaded.
func RelationshipToDTO(r *models.UserRelationship) dto.UserRelationshipDTO {
	return dto.UserRelationshipDTO{
		FirstUser:  UserToDTO(&r.FirstUser),
		SecondUser: UserToDTO(&r.SecondUser),
		Status:     r.Status,
	}
}

// RelationshipFromDTO converts a relationship read model back to an entity.
func RelationshipFromDTO(d dto.UserRelationshipDTO) models.UserRelationship {
	return models.UserRelationship{
		FirstUser:  UserFromDTO(d.FirstUser),
		SecondUser: UserFromDTO(d.SecondUser),
		Status:     d.Status,
	}
}

// RelationshipsToDTO maps a slice, never returning nil.
func RelationshipsToDTO(rels []models.UserRelationship) []dto.UserRelationshipDTO {
	out := make([]dto.UserRelationshipDTO, 0, len(rels))
	for i := range rels {
		out = append(out, RelationshipToDTO(&rels[i]))
	}
	return out
}

// TaskListToDTO converts a task list to its read model.
func TaskListToDTO(l *models.TaskList) dto.TaskListDTO {
	return dto.TaskListDTO{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// TaskListFromDTO converts a read model back to an entity.
func TaskListFromDTO(d dto.TaskListDTO) models.TaskList {
	return models.TaskList{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// TaskListFromCreateDTO builds an unsaved task list for owner.
func TaskListFromCreateDTO(ownerID int64, d *dto.TaskListCreateDTO) models.TaskList {
	return models.TaskList{
		OwnerID:     ownerID,
		Name:        d.Name,
		Description: d.Description,
	}
}

// TaskListsToDTO maps a slice, never returning nil.
func TaskListsToDTO(lists []models.TaskList) []dto.TaskListDTO {
	out := make([]dto.TaskListDTO, 0, len(lists))
	for i := range lists {
		out = append(out, TaskListToDTO(&lists[i]))
	}
	return out
}
