package service

import "errors"

var (
	// Ошибки бизнес-логики для обработки в handlers
	ErrTourNotFound        = errors.New("tour does not exist")
	ErrRatingNotFound      = errors.New("tour-rating pair not found")
	ErrTourHasNoRatings    = errors.New("tour has no ratings")
	ErrTourPackageNotFound = errors.New("tour package not found")

	ErrTourPackageAlreadyExists = errors.New("tour package already exists")
	ErrTourPackageHasTours      = errors.New("tour package has tours and cannot be deleted")
)
