package repository

import (
	"context"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// ActorRepository 演员/导演仓库
type ActorRepository struct {
	db *gorm.DB
}

// NewActorRepository 创建演员仓库
func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// Create 创建演员
func (r *ActorRepository) Create(ctx context.Context, a *model.Actor) error {
	return translateError(r.db.WithContext(ctx).Create(a).Error)
}

// Update 更新演员
func (r *ActorRepository) Update(ctx context.Context, a *model.Actor) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "actors", a.ID, ErrNotFound); err != nil {
			return err
		}
		return tx.Save(a).Error
	})
	return translateError(err)
}

// Delete 删除演员，并从所有电影的导演、演员列表中移除
func (r *ActorRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "actors", id)
	})
	return translateError(err)
}

// FindByID 根据 ID 查找演员
func (r *ActorRepository) FindByID(ctx context.Context, id uint) (*model.Actor, error) {
	var a model.Actor
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

// FindByName 按姓名查找，可能重名，返回第一条
func (r *ActorRepository) FindByName(ctx context.Context, name string) (*model.Actor, error) {
	var a model.Actor
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC").First(&a).Error; err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

// ListAll 获取所有演员
func (r *ActorRepository) ListAll(ctx context.Context) ([]*model.Actor, error) {
	var actors []*model.Actor
	err := r.db.WithContext(ctx).Order("id ASC").Find(&actors).Error
	return actors, translateError(err)
}
