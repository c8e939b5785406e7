// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

// Student represents one record in the registry's collection.
//
// The json:"..." tags control how fields appear on the wire; lowercase
// names match the API's JSON shape:
//
//	{ "id": 3, "name": "Al", "grade": "C", "email": "al@x.com" }
type Student struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade"`
	Email string `json:"email"`
}

// CreateStudentRequest is the POST /students payload.
//
// Fields are pointers so that validation is a pure presence check:
// a nil pointer means the key was absent from the JSON body, while an
// empty string is still "present" and passes. The validate:"required"
// rules are checked by the go-playground/validator package and fail
// only on nil.
type CreateStudentRequest struct {
	Name  *string `json:"name"  validate:"required"`
	Grade *string `json:"grade" validate:"required"`
	Email *string `json:"email" validate:"required"`
}

// StudentUpdate carries the optional replacement fields of a merge-PUT.
// A nil field leaves the stored value untouched; a non-nil field
// overwrites it, empty strings included.
type StudentUpdate struct {
	Name  *string `json:"name"`
	Grade *string `json:"grade"`
	Email *string `json:"email"`
}
