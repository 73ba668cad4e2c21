package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPhoneAlreadyUsed = errors.New("phone number already registered")
	ErrTokenInvalid     = errors.New("refresh token is invalid")
)
