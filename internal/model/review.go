package model

import "fmt"

// Review 电影评论，ParentID 不为空时表示回复，不能回复自己
type Review struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"size:254;not null" validate:"required,max=254,email"`
	Name     string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Text     string `json:"text" gorm:"type:text;not null" validate:"required,max=5000"`
	ParentID *uint  `json:"parent_id" gorm:"index" validate:"omitempty,nefield=ID"`
	MovieID  uint   `json:"movie_id" gorm:"not null;index" validate:"required"`

	Parent  *Review  `json:"-" validate:"-"`
	Replies []Review `json:"replies,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" validate:"-"`
	Movie   *Movie   `json:"movie,omitempty" validate:"-"`
}

func (r *Review) String() string {
	return fmt.Sprintf("%s - %s", r.Name, movieLabel(r.Movie, r.MovieID))
}
