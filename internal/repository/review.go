package repository

import (
	"context"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository 评论仓库
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓库
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func requireReviewRefs(tx *gorm.DB, rv *model.Review) error {
	if err := requireRef(tx, "movies", rv.MovieID); err != nil {
		return err
	}
	if rv.ParentID != nil {
		return requireRef(tx, "reviews", *rv.ParentID)
	}
	return nil
}

// Create 创建评论或回复，ParentID 指向被回复的评论
func (r *ReviewRepository) Create(ctx context.Context, rv *model.Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireReviewRefs(tx, rv); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(rv).Error
	})
	return translateError(err)
}

// Update 更新评论
func (r *ReviewRepository) Update(ctx context.Context, rv *model.Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "reviews", rv.ID, ErrNotFound); err != nil {
			return err
		}
		if err := requireReviewRefs(tx, rv); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(rv).Error
	})
	return translateError(err)
}

// Delete 删除评论，它的回复保留并变为顶层评论
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "reviews", id)
	})
	return translateError(err)
}

// FindByID 根据 ID 查找评论
func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var rv model.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &rv, nil
}

// ListByMovie 获取某部电影的全部评论（平铺）
func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID uint) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).Order("id ASC").Find(&reviews).Error
	return reviews, translateError(err)
}

// Thread 获取某部电影的顶层评论，Replies 中带直接回复
func (r *ReviewRepository) Thread(ctx context.Context, movieID uint) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.WithContext(ctx).
		Preload("Replies", orderByID).
		Where("movie_id = ? AND parent_id IS NULL", movieID).
		Order("id ASC").
		Find(&reviews).Error
	return reviews, translateError(err)
}
