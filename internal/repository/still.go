package repository

import (
	"context"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// MovieStillRepository 剧照仓库
type MovieStillRepository struct {
	db *gorm.DB
}

// NewMovieStillRepository 创建剧照仓库
func NewMovieStillRepository(db *gorm.DB) *MovieStillRepository {
	return &MovieStillRepository{db: db}
}

// Create 创建剧照，电影必须存在
func (r *MovieStillRepository) Create(ctx context.Context, s *model.MovieStill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRef(tx, "movies", s.MovieID); err != nil {
			return err
		}
		return tx.Create(s).Error
	})
	return translateError(err)
}

// Update 更新剧照
func (r *MovieStillRepository) Update(ctx context.Context, s *model.MovieStill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "movie_stills", s.ID, ErrNotFound); err != nil {
			return err
		}
		if err := requireRef(tx, "movies", s.MovieID); err != nil {
			return err
		}
		return tx.Save(s).Error
	})
	return translateError(err)
}

// Delete 删除剧照
func (r *MovieStillRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "movie_stills", id)
	})
	return translateError(err)
}

// FindByID 根据 ID 查找剧照
func (r *MovieStillRepository) FindByID(ctx context.Context, id uint) (*model.MovieStill, error) {
	var s model.MovieStill
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

// ListByMovie 获取某部电影的剧照
func (r *MovieStillRepository) ListByMovie(ctx context.Context, movieID uint) ([]*model.MovieStill, error) {
	var stills []*model.MovieStill
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).Order("id ASC").Find(&stills).Error
	return stills, translateError(err)
}
