package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository 评分仓库
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository 创建评分仓库
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// RatingSummary 电影评分汇总
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// Create 新增评分，星级和电影都必须存在
func (r *RatingRepository) Create(ctx context.Context, rating *model.Rating) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRatingRefs(tx, rating.StarID, rating.MovieID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(rating).Error
	})
	return translateError(err)
}

// Update 按 ID 修改评分的 IP、星级或电影
func (r *RatingRepository) Update(ctx context.Context, rating *model.Rating) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "ratings", rating.ID, ErrNotFound); err != nil {
			return err
		}
		if err := requireRatingRefs(tx, rating.StarID, rating.MovieID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(rating).Error
	})
	return translateError(err)
}

// Rate 同一 IP 对同一部电影只保留一条评分：已有则改星级，没有则新建
func (r *RatingRepository) Rate(ctx context.Context, ip string, movieID, starID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRatingRefs(tx, starID, movieID); err != nil {
			return err
		}

		err := tx.Where("ip = ? AND movie_id = ?", ip, movieID).Order("id ASC").First(&rating).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rating = model.Rating{IP: ip, MovieID: movieID, StarID: starID}
			return tx.Omit(clause.Associations).Create(&rating).Error
		}
		if err != nil {
			return err
		}

		rating.StarID = starID
		return tx.Omit(clause.Associations).Save(&rating).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &rating, nil
}

func requireRatingRefs(tx *gorm.DB, starID, movieID uint) error {
	if err := requireRef(tx, "rating_stars", starID); err != nil {
		return err
	}
	return requireRef(tx, "movies", movieID)
}

// Delete 删除评分
func (r *RatingRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "ratings", id)
	})
	return translateError(err)
}

// FindByID 根据 ID 查找评分（含星级和电影）
func (r *RatingRepository) FindByID(ctx context.Context, id uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).Preload("Star").Preload("Movie").First(&rating, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &rating, nil
}

// ListByMovie 获取某部电影的评分（含星级）
func (r *RatingRepository) ListByMovie(ctx context.Context, movieID uint) ([]*model.Rating, error) {
	var ratings []*model.Rating
	err := r.db.WithContext(ctx).Preload("Star").Where("movie_id = ?", movieID).Order("id ASC").Find(&ratings).Error
	return ratings, translateError(err)
}

// Summary 电影的平均星级和评分人数
func (r *RatingRepository) Summary(ctx context.Context, movieID uint) (*RatingSummary, error) {
	var s RatingSummary
	err := r.db.WithContext(ctx).
		Table("ratings").
		Select("COALESCE(AVG(rating_stars.value), 0) AS average, COUNT(ratings.id) AS count").
		Joins("JOIN rating_stars ON rating_stars.id = ratings.star_id").
		Where("ratings.movie_id = ?", movieID).
		Scan(&s).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}
