package repositories

import (
	"context"
	"fmt"

	"recipe-app/models"

	"gorm.io/gorm"
)

// 名前付きリソース（タグ・材料）はユーザーごとに name 降順、同名は作成順で返す
const nameOrder = "name DESC, id ASC"

func findOwned[T any](ctx context.Context, db *gorm.DB, userID uint, assignedIn *gorm.DB) ([]T, error) {
	var records []T
	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if assignedIn != nil {
		query = query.Where("id IN (?)", assignedIn)
	}
	if err := query.Order(nameOrder).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func findOwnedByIDs[T any](ctx context.Context, db *gorm.DB, ids []uint, userID uint) ([]T, error) {
	var records []T
	if len(ids) == 0 {
		return records, nil
	}
	result := db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Order(nameOrder).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// assignedSubquery selects ids from a recipe join table that are attached to a live recipe.
func assignedSubquery(db *gorm.DB, joinTable, column string) *gorm.DB {
	return db.Table(joinTable).
		Select(fmt.Sprintf("%s.%s", joinTable, column)).
		Joins(fmt.Sprintf("JOIN recipes ON recipes.id = %s.recipe_id", joinTable)).
		Where("recipes.deleted_at IS NULL")
}

func deleteOwned[T any](ctx context.Context, db *gorm.DB, id, userID uint, joinTable, column string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model T
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", joinTable, column), id).Error
	})
}
