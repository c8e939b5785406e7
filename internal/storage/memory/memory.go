// Package memory provides the in-memory implementation of the
// storage.Storage interface: a process-local ordered collection of
// student records. The collection lives exactly as long as the
// process — there is no persistence across restarts.
//
// All access goes through a single sync.RWMutex, so concurrent
// requests observe the collection as if they ran one at a time:
// no lost updates, no duplicate ids, no torn reads.
package memory

import (
	"sync"

	"github.com/campushq/student-registry/internal/storage"
	"github.com/campushq/student-registry/internal/types"
)

// Store is the concrete implementation of storage.Storage.
// The slice preserves insertion order, which is the order
// GET /students returns.
type Store struct {
	mu       sync.RWMutex
	students []types.Student
}

// New returns an empty store.
func New() *Store {
	return &Store{students: make([]types.Student, 0)}
}

// NewSeeded returns a store preloaded with the default roster the
// service boots with.
func NewSeeded() *Store {
	s := New()
	s.students = append(s.students,
		types.Student{ID: 1, Name: "John Doe", Grade: "A", Email: "john.doe@example.com"},
		types.Student{ID: 2, Name: "Jane Smith", Grade: "B", Email: "jane.smith@example.com"},
	)
	return s
}

// nextID computes the id for a new record: highest existing id plus
// one, or 1 for an empty collection. Deleting the highest-id student
// therefore lets its id be reissued to the next create — kept for
// compatibility with the original service (see DESIGN.md).
//
// Caller must hold at least the read lock.
func (s *Store) nextID() int64 {
	var max int64
	for _, st := range s.students {
		if st.ID > max {
			max = st.ID
		}
	}
	return max + 1
}

// CreateStudent appends a new record with a store-assigned id and
// returns it.
func (s *Store) CreateStudent(name, grade, email string) (types.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := types.Student{
		ID:    s.nextID(),
		Name:  name,
		Grade: grade,
		Email: email,
	}
	s.students = append(s.students, student)

	return student, nil
}

// GetStudentByID returns the first record matching id, or
// storage.ErrStudentNotFound.
func (s *Store) GetStudentByID(id int64) (types.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}

	return types.Student{}, storage.ErrStudentNotFound
}

// GetStudents returns a copy of the collection in insertion order.
// The copy keeps callers from seeing later mutations through a shared
// backing array. Always non-nil so it encodes to [] rather than null.
func (s *Store) GetStudents() ([]types.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]types.Student, len(s.students))
	copy(students, s.students)

	return students, nil
}

// UpdateStudentByID merges the non-nil fields of upd into the matching
// record in place. Nil fields keep their stored values.
func (s *Store) UpdateStudentByID(id int64, upd types.StudentUpdate) (types.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID != id {
			continue
		}

		if upd.Name != nil {
			s.students[i].Name = *upd.Name
		}
		if upd.Grade != nil {
			s.students[i].Grade = *upd.Grade
		}
		if upd.Email != nil {
			s.students[i].Email = *upd.Email
		}

		return s.students[i], nil
	}

	return types.Student{}, storage.ErrStudentNotFound
}

// DeleteStudentByID rebuilds the collection excluding any record
// matching id. A non-existent id is a no-op, not an error — delete is
// idempotent.
func (s *Store) DeleteStudentByID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]types.Student, 0, len(s.students))
	for _, st := range s.students {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.students = kept

	return nil
}
