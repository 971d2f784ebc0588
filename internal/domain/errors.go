package domain

import "errors"

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrActorNotFound        = errors.New("actor not found")
	ErrInvalidAdminFormat   = errors.New("invalid admin identity format")
	ErrInvalidStatusPayload = errors.New("invalid status payload")
	ErrInvalidDisposition   = errors.New("invalid disposition")
	ErrInvalidSubmission    = errors.New("invalid web app submission")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
// и о которой пользователь уже уведомлён
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
