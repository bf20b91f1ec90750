package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKey 判断唯一约束冲突。
// 不同驱动报错文案不一致，gorm.ErrDuplicatedKey 之外再按关键字兜底。
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
