package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/user/moviecatalog/internal/config"
	"github.com/user/moviecatalog/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(cfg.LogLevel),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), gormCfg)
		if err != nil {
			return nil, errors.Wrap(err, "无法打开 sqlite 数据库")
		}
	case "postgres", "":
		sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "无法连接数据库")
		}
		// 测试连接
		if err := sqlDB.Ping(); err != nil {
			return nil, errors.Wrap(err, "数据库 ping 失败")
		}
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
		if err != nil {
			return nil, errors.Wrap(err, "gorm 初始化失败")
		}
	default:
		return nil, errors.Errorf("不支持的数据库驱动: %s", cfg.DBDriver)
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return db, nil
}

// sqliteDSN sqlite 默认不检查外键，需要在连接串里打开
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func newGormLogger(level string) logger.Interface {
	lvl := logger.Warn
	switch level {
	case "debug", "trace":
		lvl = logger.Info
	case "error":
		lvl = logger.Error
	case "silent":
		lvl = logger.Silent
	}
	return logger.New(log.StandardLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  lvl,
		IgnoreRecordNotFoundError: true,
	})
}

// Models 全部实体，顺序即迁移顺序
func Models() []interface{} {
	return []interface{}{
		&model.Category{},
		&model.Genre{},
		&model.Actor{},
		&model.Movie{},
		&model.MovieStill{},
		&model.RatingStar{},
		&model.Rating{},
		&model.Review{},
	}
}

// Migrate 建表，包括三张多对多关联表和外键约束
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "数据库迁移失败")
	}
	return nil
}

// Repositories 仓库集合
type Repositories struct {
	DB         *gorm.DB
	Category   *CategoryRepository
	Genre      *GenreRepository
	Actor      *ActorRepository
	Movie      *MovieRepository
	Still      *MovieStillRepository
	RatingStar *RatingStarRepository
	Rating     *RatingRepository
	Review     *ReviewRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:         db,
		Category:   NewCategoryRepository(db),
		Genre:      NewGenreRepository(db),
		Actor:      NewActorRepository(db),
		Movie:      NewMovieRepository(db),
		Still:      NewMovieStillRepository(db),
		RatingStar: NewRatingStarRepository(db),
		Rating:     NewRatingRepository(db),
		Review:     NewReviewRepository(db),
	}
}

// TableCount 单表行数
type TableCount struct {
	Table string
	Rows  int64
}

// Stats 统计每张表（含关联表）的行数
func (r *Repositories) Stats(ctx context.Context) ([]TableCount, error) {
	tables := Catalog().Tables()
	counts := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		var n int64
		if err := r.DB.WithContext(ctx).Table(table).Count(&n).Error; err != nil {
			return nil, errors.Wrapf(err, "统计 %s 失败", table)
		}
		counts = append(counts, TableCount{Table: table, Rows: n})
	}
	return counts, nil
}
