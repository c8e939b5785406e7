// Package storage defines the Storage interface — the contract any
// backend must satisfy to hold the student collection.
//
// Handlers depend only on this interface, never on a concrete store.
// Swapping the in-memory collection for a real database later means
// implementing these methods and changing one line in main.go; tests
// can pass any implementation without touching the HTTP layer.
package storage

import (
	"errors"

	"github.com/campushq/student-registry/internal/types"
)

// ErrStudentNotFound is returned by lookups and updates when no record
// matches the given id. Handlers map it to 404; any other error is a
// genuine internal failure.
var ErrStudentNotFound = errors.New("student not found")

// Storage is the collection contract.
// Any concrete type that implements all of these methods satisfies the
// interface implicitly — no "implements" keyword required.
type Storage interface {
	// CreateStudent appends a new record with a store-assigned id and
	// returns it. The id is (max existing id)+1, or 1 when the
	// collection is empty.
	CreateStudent(name, grade, email string) (types.Student, error)

	// GetStudentByID fetches a single student by id.
	// Returns ErrStudentNotFound if no record matches.
	GetStudentByID(id int64) (types.Student, error)

	// GetStudents returns every student in insertion order.
	// Returns an empty slice (not nil) when there are no students.
	GetStudents() ([]types.Student, error)

	// UpdateStudentByID merges the non-nil fields of upd into the
	// matching record in place and returns the updated record.
	// Returns ErrStudentNotFound if no record matches.
	UpdateStudentByID(id int64, upd types.StudentUpdate) (types.Student, error)

	// DeleteStudentByID removes any record matching id. Deleting an id
	// that does not exist is not an error.
	DeleteStudentByID(id int64) error
}
