package repository

import (
	"context"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// RatingStarRepository 星级仓库
type RatingStarRepository struct {
	db *gorm.DB
}

// NewRatingStarRepository 创建星级仓库
func NewRatingStarRepository(db *gorm.DB) *RatingStarRepository {
	return &RatingStarRepository{db: db}
}

// Create 创建星级
func (r *RatingStarRepository) Create(ctx context.Context, s *model.RatingStar) error {
	return translateError(r.db.WithContext(ctx).Create(s).Error)
}

// Update 更新星级
func (r *RatingStarRepository) Update(ctx context.Context, s *model.RatingStar) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "rating_stars", s.ID, ErrNotFound); err != nil {
			return err
		}
		return tx.Save(s).Error
	})
	return translateError(err)
}

// Delete 删除星级，使用该星级的评分一并删除
func (r *RatingStarRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "rating_stars", id)
	})
	return translateError(err)
}

// FindByID 根据 ID 查找星级
func (r *RatingStarRepository) FindByID(ctx context.Context, id uint) (*model.RatingStar, error) {
	var s model.RatingStar
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

// FindByValue 根据星级值查找
func (r *RatingStarRepository) FindByValue(ctx context.Context, value int) (*model.RatingStar, error) {
	var s model.RatingStar
	if err := r.db.WithContext(ctx).Where("value = ?", value).Order("id ASC").First(&s).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

// ListAll 按星级值升序获取所有星级
func (r *RatingStarRepository) ListAll(ctx context.Context) ([]*model.RatingStar, error) {
	var stars []*model.RatingStar
	err := r.db.WithContext(ctx).Order("value ASC").Find(&stars).Error
	return stars, translateError(err)
}
