package util

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailRegistered   = errors.New("该邮箱已被注册")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrAttemptNotFound   = errors.New("attempt not found")
	ErrInvalidCredential = errors.New("邮箱或密码错误")
	ErrAIUnavailable     = errors.New("AI service unavailable")
)

// ValidationError 请求内容不合法，由控制层映射为 400
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
