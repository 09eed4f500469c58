package model

import (
	"fmt"
	"strconv"
)

// RatingStar 评分星级
type RatingStar struct {
	ID    uint `json:"id" gorm:"primaryKey"`
	Value int  `json:"value" gorm:"not null" validate:"gte=-32768,lte=32767"`
}

// NewRatingStar 创建星级
func NewRatingStar(value int) *RatingStar {
	return &RatingStar{Value: value}
}

func (s *RatingStar) String() string {
	return strconv.Itoa(s.Value)
}

// Rating 按 IP 记录的评分
type Rating struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	IP      string `json:"ip" gorm:"column:ip;size:15;not null;index" validate:"required,max=15"`
	StarID  uint   `json:"star_id" gorm:"not null;index" validate:"required"`
	MovieID uint   `json:"movie_id" gorm:"not null;index" validate:"required"`

	Star  *RatingStar `json:"star,omitempty" gorm:"foreignKey:StarID;constraint:OnDelete:CASCADE" validate:"-"`
	Movie *Movie      `json:"movie,omitempty" validate:"-"`
}

// String 需要预加载 Star 和 Movie，否则用 ID 代替
func (r *Rating) String() string {
	star := strconv.FormatUint(uint64(r.StarID), 10)
	if r.Star != nil {
		star = r.Star.String()
	}
	return fmt.Sprintf("%s - %s", star, movieLabel(r.Movie, r.MovieID))
}

func movieLabel(m *Movie, id uint) string {
	if m != nil {
		return m.Title
	}
	return fmt.Sprintf("movie#%d", id)
}
