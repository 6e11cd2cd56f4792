package store

import "errors"

var (
	// ErrNotFound means a mutation referenced an app ID that is not stored.
	ErrNotFound = errors.New("app not found")

	// ErrSizeMismatch means a reorder payload did not cover exactly the
	// stored set of IDs. Partial reorders are rejected outright.
	ErrSizeMismatch = errors.New("reorder does not match stored apps")

	// ErrCategoryProtected means an attempt to delete the "General" category.
	ErrCategoryProtected = errors.New("the General category cannot be deleted")
)
