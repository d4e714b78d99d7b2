package services

import (
	"context"
	"errors"
	"fmt"

	"taskhub-api/internal/models"
	"taskhub-api/internal/storage"
	"taskhub-api/internal/transport/dto"
	"taskhub-api/internal/transport/mapper"

	"go.uber.org/zap"
)

type relationshipService struct {
	repo   storage.RelationshipRepository
	users  storage.UserRepository
	logger *zap.Logger
}

// NewRelationshipService creates a new instance of RelationshipService.
func NewRelationshipService(repo storage.RelationshipRepository, users storage.UserRepository, logger *zap.Logger) RelationshipService {
	return &relationshipService{repo: repo, users: users, logger: logger.Named("relationships")}
}

func (s *relationshipService) checkPair(ctx context.Context, actorID, otherID int64) error {
	if actorID == otherID {
		return fieldError("userId", "cannot target yourself")
	}
	if _, err := s.users.GetByID(ctx, otherID); err != nil {
		return MapRepoError(s.logger, err, fmt.Sprintf("get user %d", otherID))
	}
	return nil
}

func (s *relationshipService) Get(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	if actorID == otherID {
		return nil, fieldError("userId", "cannot target yourself")
	}
	first, second, _ := models.OrderPair(actorID, otherID)
	rel, err := s.repo.Get(ctx, first, second)
	if err != nil {
		return nil, MapRepoError(s.logger, err, fmt.Sprintf("get relationship with %d", otherID))
	}
	out := mapper.RelationshipToDTO(rel)
	return &out, nil
}

func (s *relationshipService) List(ctx context.Context, actorID int64) ([]dto.UserRelationshipDTO, error) {
	rels, err := s.repo.ListForUser(ctx, actorID)
	if err != nil {
		return nil, MapRepoError(s.logger, err, "list relationships")
	}
	return mapper.RelationshipsToDTO(rels), nil
}

// apply loads the pair's current status, computes the transition and persists it.
// It returns nil when the transition removed the relationship.
func (s *relationshipService) apply(ctx context.Context, actorID, otherID int64, action models.RelationshipAction) (*dto.UserRelationshipDTO, error) {
	if err := s.checkPair(ctx, actorID, otherID); err != nil {
		return nil, err
	}
	first, second, actorIsFirst := models.OrderPair(actorID, otherID)

	var current *models.RelationshipStatus
	existing, err := s.repo.Get(ctx, first, second)
	switch {
	case err == nil:
		current = &existing.Status
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, MapRepoError(s.logger, err, "load relationship")
	}

	next, err := models.NextStatus(current, actorIsFirst, action)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	if next.Delete {
		if err := s.repo.Delete(ctx, first, second); err != nil {
			return nil, MapRepoError(s.logger, err, "delete relationship")
		}
		s.logger.Debug("relationship removed",
			zap.Int64("actor_id", actorID), zap.Int64("other_id", otherID), zap.String("action", string(action)))
		return nil, nil
	}

	rel, err := s.repo.Upsert(ctx, first, second, next.Status)
	if err != nil {
		return nil, MapRepoError(s.logger, err, "save relationship")
	}
	s.logger.Debug("relationship changed",
		zap.Int64("actor_id", actorID), zap.Int64("other_id", otherID),
		zap.String("action", string(action)), zap.String("status", string(next.Status)))
	out := mapper.RelationshipToDTO(rel)
	return &out, nil
}

func (s *relationshipService) SendRequest(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return s.apply(ctx, actorID, otherID, models.ActionRequest)
}

func (s *relationshipService) Accept(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return s.apply(ctx, actorID, otherID, models.ActionAccept)
}

func (s *relationshipService) Remove(ctx context.Context, actorID, otherID int64) error {
	_, err := s.apply(ctx, actorID, otherID, models.ActionRemove)
	return err
}

func (s *relationshipService) Block(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return s.apply(ctx, actorID, otherID, models.ActionBlock)
}

func (s *relationshipService) Unblock(ctx context.Context, actorID, otherID int64) (*dto.UserRelationshipDTO, error) {
	return s.apply(ctx, actorID, otherID, models.ActionUnblock)
}
