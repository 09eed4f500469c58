package repository

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requireRow 行不存在时返回 notFound
func requireRow(tx *gorm.DB, table string, id uint, notFound error) error {
	var n int64
	if err := tx.Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// requireRef 外键目标必须存在
func requireRef(tx *gorm.DB, table string, id uint) error {
	err := requireRow(tx, table, id, ErrReferenceNotFound)
	if errors.Is(err, ErrReferenceNotFound) {
		return errors.Wrapf(err, "%s#%d", table, id)
	}
	return err
}

// deleteRow 先按 reg 中的策略处理所有引用方，再删除本行；需要在事务中调用
func deleteRow(tx *gorm.DB, reg *Registry, table string, id uint) error {
	if err := requireRow(tx, table, id, ErrNotFound); err != nil {
		return err
	}

	for _, rel := range reg.ChildrenOf(table) {
		switch {
		case rel.Junction:
			q := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", rel.ChildTable, rel.ForeignKey)
			if err := tx.Exec(q, id).Error; err != nil {
				return errors.Wrapf(err, "清理 %s 失败", rel.ChildTable)
			}

		case rel.OnDelete == SetNull:
			err := tx.Table(rel.ChildTable).
				Where(rel.ForeignKey+" = ?", id).
				Update(rel.ForeignKey, nil).Error
			if err != nil {
				return errors.Wrapf(err, "置空 %s.%s 失败", rel.ChildTable, rel.ForeignKey)
			}

		case rel.OnDelete == Cascade:
			var ids []uint
			if err := tx.Table(rel.ChildTable).Where(rel.ForeignKey+" = ?", id).Pluck("id", &ids).Error; err != nil {
				return err
			}
			for _, childID := range ids {
				if err := deleteRow(tx, reg, rel.ChildTable, childID); err != nil {
					return err
				}
			}
		}
	}

	q := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	return tx.Exec(q, id).Error
}
