package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrUsernameTaken    = errors.New("this username is already taken")
	ErrAmountNegative   = errors.New("the amount must be zero or positive")
	ErrBudgetNegative   = errors.New("the monthly budget must be zero or positive")
	ErrUsernameEmpty    = errors.New("the username must not be empty")
)
