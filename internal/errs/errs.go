package errs

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrLoginAlreadyExists = errors.New("login already exists")
var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrRecurringOrderNotFound = errors.New("recurring order not found")
var ErrAlreadyExecutedToday = errors.New("already executed today")
