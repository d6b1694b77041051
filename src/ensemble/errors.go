package ensemble

import "fmt"

// ShapeError reports a dimensionality or length mismatch in input data:
// arrays of rank > 2, ragged sweep rows, or a coordinate axis whose length
// does not match the data it describes.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string { return "shape error: " + e.Reason }

func shapeErrorf(format string, args ...interface{}) *ShapeError {
	return &ShapeError{Reason: fmt.Sprintf(format, args...)}
}

// DomainError reports input values outside the operation's domain, such as
// symmetrizing a profile on an axis that is not mirrored about zero, or
// normalizing an ACF whose zero-lag value is zero.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string { return "domain error: " + e.Reason }

func domainErrorf(format string, args ...interface{}) *DomainError {
	return &DomainError{Reason: fmt.Sprintf(format, args...)}
}
