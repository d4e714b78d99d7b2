package services

import (
	"context"
	"fmt"

	"taskhub-api/internal/storage"
	"taskhub-api/internal/transport/dto"
	"taskhub-api/internal/transport/mapper"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type itemColorService struct {
	repo     storage.ItemColorRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewItemColorService creates a new instance of ItemColorService.
func NewItemColorService(repo storage.ItemColorRepository, v *validator.Validate, logger *zap.Logger) ItemColorService {
	return &itemColorService{repo: repo, validate: v, logger: logger.Named("item_colors")}
}

// Create validates, normalizes, persists and maps back. Normalization runs strictly
// between validation and the repository so stored values are always canonical.
func (s *itemColorService) Create(ctx context.Context, req *dto.ItemColorCreateDTO) (*dto.ItemColorDTO, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, err
	}
	req.Normalize()

	entity := mapper.ItemColorFromCreateDTO(req)
	saved, err := s.repo.Save(ctx, &entity)
	if err != nil {
		return nil, MapRepoError(s.logger, err, "create item color")
	}
	out := mapper.ItemColorToDTO(saved)
	return &out, nil
}

func (s *itemColorService) Update(ctx context.Context, id int64, req *dto.ItemColorCreateDTO) (*dto.ItemColorDTO, error) {
	if err := validate(s.validate, req); err != nil {
		return nil, err
	}
	req.Normalize()

	entity := mapper.ItemColorFromCreateDTO(req)
	entity.ID = id
	updated, err := s.repo.Update(ctx, &entity)
	if err != nil {
		return nil, MapRepoError(s.logger, err, fmt.Sprintf("update item color %d", id))
	}
	out := mapper.ItemColorToDTO(updated)
	return &out, nil
}

func (s *itemColorService) GetByID(ctx context.Context, id int64) (*dto.ItemColorDTO, error) {
	color, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, MapRepoError(s.logger, err, fmt.Sprintf("get item color %d", id))
	}
	out := mapper.ItemColorToDTO(color)
	return &out, nil
}

func (s *itemColorService) GetAll(ctx context.Context) ([]dto.ItemColorDTO, error) {
	colors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, MapRepoError(s.logger, err, "list item colors")
	}
	return mapper.ItemColorsToDTO(colors), nil
}

func (s *itemColorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return MapRepoError(s.logger, err, fmt.Sprintf("delete item color %d", id))
	}
	return nil
}
