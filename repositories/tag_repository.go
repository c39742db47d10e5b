package repositories

import (
	"context"

	"recipe-app/models"

	"gorm.io/gorm"
)

type ITagRepository interface {
	FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Tag, error)
	FindByIDs(ctx context.Context, tagIDs []uint, userID uint) ([]models.Tag, error)
	Create(ctx context.Context, newTag models.Tag) (*models.Tag, error)
	Delete(ctx context.Context, tagID uint, userID uint) error
}

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) ITagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) FindAll(ctx context.Context, userID uint, assignedOnly bool) ([]models.Tag, error) {
	var assigned *gorm.DB
	if assignedOnly {
		assigned = assignedSubquery(r.db, "recipe_tags", "tag_id")
	}
	tags, err := findOwned[models.Tag](ctx, r.db, userID, assigned)
	return tags, wrap("find tags", err)
}

func (r *TagRepository) FindByIDs(ctx context.Context, tagIDs []uint, userID uint) ([]models.Tag, error) {
	tags, err := findOwnedByIDs[models.Tag](ctx, r.db, tagIDs, userID)
	return tags, wrap("find tags by id", err)
}

func (r *TagRepository) Create(ctx context.Context, newTag models.Tag) (*models.Tag, error) {
	result := r.db.WithContext(ctx).Create(&newTag)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newTag, nil
}

func (r *TagRepository) Delete(ctx context.Context, tagID uint, userID uint) error {
	return deleteOwned[models.Tag](ctx, r.db, tagID, userID, "recipe_tags", "tag_id")
}
