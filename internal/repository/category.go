package repository

import (
	"context"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// CategoryRepository 分类仓库
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create 创建分类，url 重复时返回 ErrDuplicateValue
func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	return translateError(r.db.WithContext(ctx).Create(c).Error)
}

// Update 更新分类
func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "categories", c.ID, ErrNotFound); err != nil {
			return err
		}
		return tx.Save(c).Error
	})
	return translateError(err)
}

// Delete 删除分类，引用它的电影分类置空
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "categories", id)
	})
	return translateError(err)
}

// FindByID 根据 ID 查找分类
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// FindByURL 根据 url 查找分类
func (r *CategoryRepository) FindByURL(ctx context.Context, url string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("url = ?", url).First(&c).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// ListAll 获取所有分类
func (r *CategoryRepository) ListAll(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, translateError(err)
}
