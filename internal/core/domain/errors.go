package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrDuplicateEmail = errors.New("email already exists")
