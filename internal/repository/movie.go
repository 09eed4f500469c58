package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieRepository 电影仓库
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository 创建电影仓库
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// MovieFilter 电影筛选条件，年份与类型之间是"或"的关系
type MovieFilter struct {
	GenreIDs []uint
	Years    []int
}

// Create 创建电影
// Directors/Actors/Genres 只取 ID 写入关联表，引用不存在时返回 ErrReferenceNotFound；剧照等子记录需单独创建
func (r *MovieRepository) Create(ctx context.Context, m *model.Movie) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.CategoryID == nil && m.Category != nil {
			m.CategoryID = &m.Category.ID
		}
		if m.CategoryID != nil {
			if err := requireRef(tx, "categories", *m.CategoryID); err != nil {
				return err
			}
		}

		directors, err := loadActors(tx, actorIDs(m.Directors))
		if err != nil {
			return err
		}
		actors, err := loadActors(tx, actorIDs(m.Actors))
		if err != nil {
			return err
		}
		genres, err := loadGenres(tx, genreIDs(m.Genres))
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return err
		}

		if err := replaceLinks(tx, "movie_directors", "actor_id", m.ID, actorIDs(directors)); err != nil {
			return err
		}
		if err := replaceLinks(tx, "movie_actors", "actor_id", m.ID, actorIDs(actors)); err != nil {
			return err
		}
		if err := replaceLinks(tx, "movie_genres", "genre_id", m.ID, genreIDs(genres)); err != nil {
			return err
		}

		m.Directors, m.Actors, m.Genres = directors, actors, genres
		return nil
	})
	return translateError(err)
}

// Update 更新电影字段，不改动多对多关联（见 SetDirectors/SetActors/SetGenres）
func (r *MovieRepository) Update(ctx context.Context, m *model.Movie) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "movies", m.ID, ErrNotFound); err != nil {
			return err
		}
		if m.CategoryID != nil {
			if err := requireRef(tx, "categories", *m.CategoryID); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(m).Error
	})
	return translateError(err)
}

// Delete 删除电影，剧照、评分、评论和关联一并删除
func (r *MovieRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRow(tx, Catalog(), "movies", id)
	})
	return translateError(err)
}

// SetDirectors 替换导演列表
func (r *MovieRepository) SetDirectors(ctx context.Context, movieID uint, actorIDs []uint) error {
	return r.setActors(ctx, "movie_directors", movieID, actorIDs)
}

// SetActors 替换演员列表
func (r *MovieRepository) SetActors(ctx context.Context, movieID uint, actorIDs []uint) error {
	return r.setActors(ctx, "movie_actors", movieID, actorIDs)
}

func (r *MovieRepository) setActors(ctx context.Context, table string, movieID uint, ids []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "movies", movieID, ErrNotFound); err != nil {
			return err
		}
		if _, err := loadActors(tx, ids); err != nil {
			return err
		}
		return replaceLinks(tx, table, "actor_id", movieID, uniqueIDs(ids))
	})
	return translateError(err)
}

// SetGenres 替换类型列表
func (r *MovieRepository) SetGenres(ctx context.Context, movieID uint, ids []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, "movies", movieID, ErrNotFound); err != nil {
			return err
		}
		if _, err := loadGenres(tx, ids); err != nil {
			return err
		}
		return replaceLinks(tx, "movie_genres", "genre_id", movieID, uniqueIDs(ids))
	})
	return translateError(err)
}

func (r *MovieRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Directors", orderByID).
		Preload("Actors", orderByID).
		Preload("Genres", orderByID).
		Preload("Stills", orderByID)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// FindByID 根据 ID 查找电影（含分类、导演、演员、类型、剧照）
func (r *MovieRepository) FindByID(ctx context.Context, id uint) (*model.Movie, error) {
	var m model.Movie
	if err := r.withDetails(ctx).First(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

// FindByURL 根据 url 查找电影（含分类、导演、演员、类型、剧照）
func (r *MovieRepository) FindByURL(ctx context.Context, url string) (*model.Movie, error) {
	var m model.Movie
	if err := r.withDetails(ctx).Where("url = ?", url).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

// ListPublished 获取已发布（非草稿）的电影
func (r *MovieRepository) ListPublished(ctx context.Context) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.WithContext(ctx).Where("draft = ?", false).Order("id ASC").Find(&movies).Error
	return movies, translateError(err)
}

// ListByCategory 获取某分类下的电影
func (r *MovieRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id ASC").Find(&movies).Error
	return movies, translateError(err)
}

// ListByGenre 获取某类型下的电影
func (r *MovieRepository) ListByGenre(ctx context.Context, genreID uint) ([]*model.Movie, error) {
	return r.listByLink(ctx, "movie_genres", "genre_id", genreID)
}

// ListByDirector 获取某人导演的电影
func (r *MovieRepository) ListByDirector(ctx context.Context, actorID uint) ([]*model.Movie, error) {
	return r.listByLink(ctx, "movie_directors", "actor_id", actorID)
}

// ListByActor 获取某人出演的电影
func (r *MovieRepository) ListByActor(ctx context.Context, actorID uint) ([]*model.Movie, error) {
	return r.listByLink(ctx, "movie_actors", "actor_id", actorID)
}

func (r *MovieRepository) listByLink(ctx context.Context, table, column string, id uint) ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.WithContext(ctx).
		Joins("JOIN "+table+" ON "+table+".movie_id = movies.id").
		Where(table+"."+column+" = ?", id).
		Order("movies.id ASC").
		Find(&movies).Error
	return movies, translateError(err)
}

// Filter 按年份或类型筛选已发布电影，条件都为空时返回全部已发布电影
func (r *MovieRepository) Filter(ctx context.Context, f MovieFilter) ([]*model.Movie, error) {
	q := r.db.WithContext(ctx).Where("draft = ?", false)
	byGenre := r.db.Table("movie_genres").Select("movie_id").Where("genre_id IN ?", f.GenreIDs)

	switch {
	case len(f.Years) > 0 && len(f.GenreIDs) > 0:
		q = q.Where(r.db.Where("year IN ?", f.Years).Or("id IN (?)", byGenre))
	case len(f.Years) > 0:
		q = q.Where("year IN ?", f.Years)
	case len(f.GenreIDs) > 0:
		q = q.Where("id IN (?)", byGenre)
	}

	var movies []*model.Movie
	err := q.Order("id ASC").Find(&movies).Error
	return movies, translateError(err)
}

// Count 电影总数
func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Movie{}).Count(&count).Error
	return count, translateError(err)
}

// replaceLinks 重写某部电影在关联表中的全部行
func replaceLinks(tx *gorm.DB, table, refColumn string, movieID uint, refIDs []uint) error {
	if err := tx.Exec("DELETE FROM "+table+" WHERE movie_id = ?", movieID).Error; err != nil {
		return err
	}
	if len(refIDs) == 0 {
		return nil
	}
	rows := make([]map[string]interface{}, 0, len(refIDs))
	for _, id := range refIDs {
		rows = append(rows, map[string]interface{}{"movie_id": movieID, refColumn: id})
	}
	return tx.Table(table).Create(rows).Error
}

func loadActors(tx *gorm.DB, ids []uint) ([]model.Actor, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	var actors []model.Actor
	if err := tx.Where("id IN ?", ids).Order("id ASC").Find(&actors).Error; err != nil {
		return nil, err
	}
	if len(actors) != len(ids) {
		return nil, errors.Wrap(ErrReferenceNotFound, "actors")
	}
	return actors, nil
}

func loadGenres(tx *gorm.DB, ids []uint) ([]model.Genre, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	var genres []model.Genre
	if err := tx.Where("id IN ?", ids).Order("id ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	if len(genres) != len(ids) {
		return nil, errors.Wrap(ErrReferenceNotFound, "genres")
	}
	return genres, nil
}

func actorIDs(actors []model.Actor) []uint {
	ids := make([]uint, 0, len(actors))
	for _, a := range actors {
		ids = append(ids, a.ID)
	}
	return ids
}

func genreIDs(genres []model.Genre) []uint {
	ids := make([]uint, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
