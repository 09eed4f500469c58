package model

// MovieStill 电影剧照
type MovieStill struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:100;not null" validate:"required,max=100"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	Image       string `json:"image" gorm:"size:100;not null" validate:"required,max=100"` // 如 movie_stills/inception-1.jpg
	MovieID     uint   `json:"movie_id" gorm:"not null;index" validate:"required"`
}

func (s *MovieStill) String() string {
	return s.Title
}
