package model

import (
	"time"
)

const (
	// DefaultYear 新建电影的默认上映年份
	DefaultYear = 2024
)

// Movie 电影，剧照、评分、评论随电影一起删除
type Movie struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:100;not null" validate:"required,max=100"`
	Tagline       string    `json:"tagline" gorm:"size:100;not null" validate:"max=100"`
	Description   string    `json:"description" gorm:"type:text;not null" validate:"required"`
	Poster        string    `json:"poster" gorm:"size:100;not null" validate:"required,max=100"` // 如 movies/inception.jpg
	// Year、Draft 为 nil 时写入默认值，显式的 0 和 false 原样保存
	Year          *int      `json:"year" gorm:"not null;default:2024;index" validate:"omitempty,gte=0,lte=32767"`
	Country       string    `json:"country" gorm:"size:30;not null" validate:"required,max=30"`
	WorldPremiere time.Time `json:"world_premiere" gorm:"type:date;not null;default:CURRENT_DATE"`
	Budget        int64     `json:"budget" gorm:"not null;default:0" validate:"gte=0,lte=2147483647"` // 美元
	FeesInUSA     int64     `json:"fees_in_usa" gorm:"column:fees_in_usa;not null;default:0" validate:"gte=0,lte=2147483647"`
	FeesInWorld   int64     `json:"fees_in_world" gorm:"column:fees_in_world;not null;default:0" validate:"gte=0,lte=2147483647"`
	CategoryID    *uint     `json:"category_id" gorm:"index"`
	URL           string    `json:"url" gorm:"column:url;size:130;uniqueIndex;not null" validate:"required,max=130,slug"`
	Draft         *bool     `json:"draft" gorm:"not null;default:true;index"`

	Category  *Category    `json:"category,omitempty" gorm:"constraint:OnDelete:SET NULL" validate:"-"`
	Directors []Actor      `json:"directors,omitempty" gorm:"many2many:movie_directors;constraint:OnDelete:CASCADE" validate:"-"`
	Actors    []Actor      `json:"actors,omitempty" gorm:"many2many:movie_actors;constraint:OnDelete:CASCADE" validate:"-"`
	Genres    []Genre      `json:"genres,omitempty" gorm:"many2many:movie_genres;constraint:OnDelete:CASCADE" validate:"-"`
	Stills    []MovieStill `json:"stills,omitempty" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
	Ratings   []Rating     `json:"-" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
	Reviews   []Review     `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

// NewMovie 创建带默认值的电影：草稿、2024 年、首映日期为今天、金额为 0
func NewMovie(title, url string) *Movie {
	return &Movie{
		Title:         title,
		URL:           url,
		Year:          Ptr(DefaultYear),
		WorldPremiere: Today(),
		Draft:         Ptr(true),
	}
}

func (m *Movie) String() string {
	return m.Title
}

// IsDraft 未设置时按草稿处理
func (m *Movie) IsDraft() bool {
	return m.Draft == nil || *m.Draft
}

// ReleaseYear 未设置时为 DefaultYear
func (m *Movie) ReleaseYear() int {
	if m.Year == nil {
		return DefaultYear
	}
	return *m.Year
}

// Ptr 返回 v 的指针，用于给可选字段赋值
func Ptr[T any](v T) *T {
	return &v
}

// applyDefaults 补齐未设置的默认值
func (m *Movie) applyDefaults() {
	if m.Year == nil {
		m.Year = Ptr(DefaultYear)
	}
	if m.Draft == nil {
		m.Draft = Ptr(true)
	}
	if m.WorldPremiere.IsZero() {
		m.WorldPremiere = Today()
	} else {
		m.WorldPremiere = DateOf(m.WorldPremiere)
	}
}

// Today 返回当天日期（UTC 零点）
func Today() time.Time {
	return DateOf(time.Now())
}

// DateOf 截断到日期
func DateOf(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
