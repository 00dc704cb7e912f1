package userdetail

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

type DetailRepository interface {
	Create(ctx context.Context, detail *dbmysql.UserDetail) error
	ByID(ctx context.Context, id uint) (*dbmysql.UserDetail, error)
	ByUserID(ctx context.Context, userID uint) ([]*dbmysql.UserDetail, error)
	Update(ctx context.Context, detail *dbmysql.UserDetail) error
	Delete(ctx context.Context, id uint) error
}

type detailRepo struct {
	db *gorm.DB
}

func NewDetailRepository(db *gorm.DB) DetailRepository {
	return &detailRepo{db: db}
}

func (r *detailRepo) Create(ctx context.Context, detail *dbmysql.UserDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *detailRepo) ByID(ctx context.Context, id uint) (*dbmysql.UserDetail, error) {
	var detail dbmysql.UserDetail
	err := r.db.WithContext(ctx).First(&detail, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("user detail", id)
		}
		return nil, fmt.Errorf("failed to load user detail: %w", err)
	}
	return &detail, nil
}

func (r *detailRepo) ByUserID(ctx context.Context, userID uint) ([]*dbmysql.UserDetail, error) {
	var details []*dbmysql.UserDetail
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user details: %w", err)
	}
	return details, nil
}

func (r *detailRepo) Update(ctx context.Context, detail *dbmysql.UserDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

func (r *detailRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.UserDetail{}, id).Error
}
