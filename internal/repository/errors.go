package repository

import "errors"

// レコードが存在しない
var ErrNotFound = errors.New("record not found")
