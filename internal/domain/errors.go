package domain

import "errors"

var (
	// ErrStoreQuery оборачивает любой сбой хранилища при чтении.
	ErrStoreQuery = errors.New("store query failed")
)
