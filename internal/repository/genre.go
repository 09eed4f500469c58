package repository

import (
	"context"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// GenreRepository 类型仓库
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建类型仓库
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create 创建类型，url 重复时返回 ErrDuplicateValue
func (r *GenreRepository) Create(ctx context.Context, g *model.Genre) error {
	return translateError(r.db.WithContext(ctx).Create(g).Error)
}

// Update 更新类型
func (r *GenreRepository) Update(ctx context.Context, g *model.Genre) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "genres", g.ID, ErrNotFound); err != nil {
			return err
		}
		return tx.Save(g).Error
	})
	return translateError(err)
}

// Delete 删除类型，同时移除电影与它的关联
func (r *GenreRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "genres", id)
	})
	return translateError(err)
}

// FindByID 根据 ID 查找类型
func (r *GenreRepository) FindByID(ctx context.Context, id uint) (*model.Genre, error) {
	var g model.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

// FindByURL 根据 url 查找类型
func (r *GenreRepository) FindByURL(ctx context.Context, url string) (*model.Genre, error) {
	var g model.Genre
	if err := r.db.WithContext(ctx).Where("url = ?", url).First(&g).Error; err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

// ListAll 获取所有类型
func (r *GenreRepository) ListAll(ctx context.Context) ([]*model.Genre, error) {
	var genres []*model.Genre
	err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error
	return genres, translateError(err)
}
