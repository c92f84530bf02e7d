package service

import (
	"errors"
	"fmt"

	"demo/printshop/internal/store"
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %d not found", e.Entity, e.ID) }

// DataStoreError wraps any failure of the underlying database.
type DataStoreError struct {
	Op  string
	Err error
}

func (e *DataStoreError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *DataStoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &DataStoreError{Op: op, Err: err}
}

// refErr turns a dangling-reference write failure into a NotFoundError.
func refErr(op string, err error, entity string, id int64) error {
	if errors.Is(err, store.ErrMissingReference) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return storeErr(op, err)
}
