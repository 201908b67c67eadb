package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrNotFound is returned when the product source has no product for an id
var ErrNotFound = errors.New("product not found")

// FetchError reports a product source request that did not complete successfully
type FetchError struct {
	Op     string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("source: %s: http %d", e.Op, e.Status)
	}
	return fmt.Sprintf("source: %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ValidationError reports a product record that breaks the data contract
type ValidationError struct {
	// Index is the position of the record in the response, -1 for single records
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	var fields validator.ValidationErrors
	if errors.As(e.Err, &fields) {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, f.Namespace()+":"+f.Tag())
		}
		return fmt.Sprintf("source: invalid product at %d: %s", e.Index, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("source: invalid product at %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
