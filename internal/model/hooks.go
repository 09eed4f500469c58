package model

import "gorm.io/gorm"

// 所有写入都在 gorm 钩子里校验，保证存储边界上不会落入非法数据

func (c *Category) BeforeSave(tx *gorm.DB) error { return Validate(c) }

func (g *Genre) BeforeSave(tx *gorm.DB) error { return Validate(g) }

func (a *Actor) BeforeSave(tx *gorm.DB) error { return Validate(a) }

func (s *MovieStill) BeforeSave(tx *gorm.DB) error { return Validate(s) }

func (s *RatingStar) BeforeSave(tx *gorm.DB) error { return Validate(s) }

func (r *Rating) BeforeSave(tx *gorm.DB) error { return Validate(r) }

func (r *Review) BeforeSave(tx *gorm.DB) error { return Validate(r) }

// BeforeSave 年份、草稿状态未设置时取默认值，首映日期未设置时取创建当天
func (m *Movie) BeforeSave(tx *gorm.DB) error {
	m.applyDefaults()
	return Validate(m)
}
