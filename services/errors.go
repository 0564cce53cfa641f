package services

import "errors"

// Ошибки доменного уровня. Обработчики транслируют их в HTTP-статусы,
// все остальное считается внутренней ошибкой (500).
var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
)
