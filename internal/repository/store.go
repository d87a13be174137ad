package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitlog/backend/internal/models"
)

// ownedStore holds the CRUD shared by every per-user record table
type ownedStore[T any] struct {
	db *gorm.DB
}

func (s ownedStore[T]) Create(ctx context.Context, rec *T) error {
	return translate(s.db.WithContext(ctx).Create(rec).Error)
}

// Get returns the record with id if userID owns it
func (s ownedStore[T]) Get(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// Update applies fields to the owned record and returns it reloaded
func (s ownedStore[T]) Update(ctx context.Context, userID, id uuid.UUID, fields map[string]interface{}) (*T, error) {
	if len(fields) == 0 {
		return s.Get(ctx, userID, id)
	}
	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, userID, id)
}

func (s ownedStore[T]) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Since returns every record of userID dated at or after since, oldest first
func (s ownedStore[T]) Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]T, error) {
	var recs []T
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since.UTC()).
		Order("date ASC, created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

// List returns the newest records of userID narrowed by filters
func (s ownedStore[T]) List(ctx context.Context, userID uuid.UUID, filters *models.RecordFilters, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	limit := models.DefaultListLimit
	if filters != nil {
		if filters.StartDate != nil {
			query = query.Where("date >= ?", filters.StartDate.UTC())
		}
		if filters.EndDate != nil {
			query = query.Where("date <= ?", filters.EndDate.UTC())
		}
		if filters.Limit > 0 && filters.Limit < limit {
			limit = filters.Limit
		}
	}

	var recs []T
	err := query.Scopes(scopes...).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, translate(err)
	}
	return recs, nil
}
