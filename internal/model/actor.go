package model

// Actor 演员或导演，同一条记录可以同时出现在两种角色里
type Actor struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null;index" validate:"required,max=100"`
	Age         int    `json:"age" gorm:"not null" validate:"gte=0,lte=32767"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	Image       string `json:"image" gorm:"size:100;not null" validate:"required,max=100"` // 媒体存储中的相对路径，如 actors/nolan.jpg
}

// NewActor 创建带默认值的演员（age = 0）
func NewActor(name string) *Actor {
	return &Actor{Name: name}
}

func (a *Actor) String() string {
	return a.Name
}
