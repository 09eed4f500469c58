package model

// Category 电影分类
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:150;not null" validate:"required,max=150"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	URL         string `json:"url" gorm:"column:url;size:160;uniqueIndex;not null" validate:"required,max=160,slug"`
}

func (c *Category) String() string {
	return c.Name
}
