package util

import "errors"

var (
	ErrLandmarkNotFound  = errors.New("landmark not found in catalog")
	ErrCountryNotFound   = errors.New("country not found in catalog")
	ErrVisitNotFound     = errors.New("visit not found")
	ErrAlreadyVisited    = errors.New("landmark already marked as visited")
	ErrVisitInFuture     = errors.New("visit date cannot be in the future")
	ErrUnknownContinent  = errors.New("unknown continent")
	ErrInvalidVisitInput = errors.New("visit requires a landmark, a country or a custom title")
)
