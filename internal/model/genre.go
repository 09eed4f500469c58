package model

// Genre 电影类型
type Genre struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	URL         string `json:"url" gorm:"column:url;size:160;uniqueIndex;not null" validate:"required,max=160,slug"`
}

func (g *Genre) String() string {
	return g.Name
}
