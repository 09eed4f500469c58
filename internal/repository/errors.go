package repository

import (
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("catalog: 记录不存在")

	// ErrDuplicateValue 唯一字段（url）重复
	ErrDuplicateValue = errors.New("catalog: 唯一字段重复")

	// ErrReferenceNotFound 外键指向的记录不存在
	ErrReferenceNotFound = errors.New("catalog: 关联记录不存在")
)

// translateError 把各数据库驱动的约束错误统一成本包的错误，校验错误原样返回
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateValue) || errors.Is(err, ErrReferenceNotFound) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrap(ErrDuplicateValue, err.Error())
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errors.Wrap(ErrReferenceNotFound, err.Error())
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return errors.Wrap(ErrDuplicateValue, pqErr.Message)
		case "foreign_key_violation":
			return errors.Wrap(ErrReferenceNotFound, pqErr.Message)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return errors.Wrap(ErrDuplicateValue, msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return errors.Wrap(ErrReferenceNotFound, msg)
	}
	return err
}
