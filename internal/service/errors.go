package service

import "errors"

// 业务错误种类，transport 层用 errors.Is 映射成 HTTP 状态；
// 没列出来的一律按内部错误处理，细节不外泄。
var (
	ErrEmailTaken         = errors.New("credentials already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("access to resource denied")
)
