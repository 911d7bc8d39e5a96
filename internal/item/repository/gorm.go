package repository

import (
	"context"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/coreapp/item-service/internal/item"
)

// GormRepo persists items in the relational store. The items table is
// created by migration 0001; the repo assumes migrations have been applied
// and surfaces the driver error ("no such table") otherwise.
type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

func (r *GormRepo) Create(ctx context.Context, it *item.Item) error {
	err := r.db.WithContext(ctx).Create(it).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *GormRepo) GetByName(ctx context.Context, name string) (*item.Item, error) {
	var it item.Item
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&it).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item by name: %w", err)
	}
	return &it, nil
}

func (r *GormRepo) List(ctx context.Context) ([]*item.Item, error) {
	var items []*item.Item
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}
