package dto

import "taskhub-api/internal/models"

// UserRelationshipDTO is the read model of a relationship between an ordered user pair.
type UserRelationshipDTO struct {
	FirstUser  UserDTO                   `json:"firstUser"`
	SecondUser UserDTO                   `json:"secondUser"`
	Status     models.RelationshipStatus `json:"status"`
}
