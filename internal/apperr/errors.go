package apperr

import "errors"

// Категории ошибок бизнес-логики. Хендлеры сопоставляют их с HTTP статусами
// через errors.Is, текст для клиента несёт сама ошибка.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func Validation(msg string) error { return &Error{kind: ErrValidation, msg: msg} }

func Conflict(msg string) error { return &Error{kind: ErrConflict, msg: msg} }

func Unauthorized(msg string) error { return &Error{kind: ErrUnauthorized, msg: msg} }

func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }
