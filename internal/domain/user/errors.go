package user

import "errors"

var (
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrInsufficientRole      = errors.New("insufficient role for this resource")
	ErrUnknownRole           = errors.New("unknown role")
)
