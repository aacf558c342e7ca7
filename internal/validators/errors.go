package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAuthorID  = errors.New("invalid author ID")
	ErrEmptyNarrative   = errors.New("narrative is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime      = errors.New("time must be in HH:MM format")
	ErrNoEmotions       = errors.New("at least one emotion is required")
	ErrTooManyEmotions  = errors.New("at most two emotions can be selected")
	ErrUnknownEmotion   = errors.New("unknown emotion identifier")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email format is invalid")
	ErrEmptyName        = errors.New("name is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)
