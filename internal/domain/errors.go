package domain

import "errors"

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrConflict                 = errors.New("resource conflict")
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrForbidden                = errors.New("forbidden")
	ErrNotEnoughData            = errors.New("not enough sleep records")
	ErrRecommendationInProgress = errors.New("recommendation already in progress")
)
