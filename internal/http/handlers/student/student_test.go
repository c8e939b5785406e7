package student_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/student-registry/internal/http/handlers/student"
	"github.com/campushq/student-registry/internal/storage"
	"github.com/campushq/student-registry/internal/storage/memory"
	"github.com/campushq/student-registry/internal/types"
)

// newRouter registers the student routes the same way main.go does,
// against the given store.
func newRouter(store storage.Storage) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("POST /students", student.New(store))
	router.HandleFunc("GET /students", student.GetList(store))
	router.HandleFunc("GET /students/{id}", student.GetByID(store))
	router.HandleFunc("PUT /students/{id}", student.Update(store))
	router.HandleFunc("DELETE /students/{id}", student.Delete(store))

	return router
}

func do(router *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func listStudents(t *testing.T, router *http.ServeMux) []types.Student {
	t.Helper()

	w := do(router, http.MethodGet, "/students", "")
	require.Equal(t, http.StatusOK, w.Code)

	var students []types.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	return students
}

func TestCreateStudent(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPost, "/students",
		`{"name":"Al","grade":"C","email":"al@x.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var created types.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, types.Student{ID: 3, Name: "Al", Grade: "C", Email: "al@x.com"}, created)

	// Read-after-create: the new record is immediately retrievable.
	w = do(router, http.MethodGet, "/students/3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched types.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateStudentMissingFields(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPost, "/students", `{"name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, w.Body.Len(), "error responses carry an empty body")

	// The failed create must not have altered the collection.
	assert.Len(t, listStudents(t, router), 2)
}

func TestCreateStudentMalformedBody(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPost, "/students", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, w.Body.Len())

	w = do(router, http.MethodPost, "/students", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, w.Body.Len())

	assert.Len(t, listStudents(t, router), 2)
}

// Presence, not content: a field set to "" is present and passes the
// required check.
func TestCreateStudentEmptyStringsAccepted(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPost, "/students",
		`{"name":"","grade":"","email":""}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetStudentByID(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodGet, "/students/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got types.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, types.Student{ID: 1, Name: "John Doe", Grade: "A", Email: "john.doe@example.com"}, got)
}

func TestGetStudentUnknownID(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodGet, "/students/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, w.Body.Len())
}

// A path segment that is not a non-negative integer is a routing-level
// not-found, the same as a route that never matched.
func TestGetStudentMalformedID(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	for _, id := range []string{"abc", "-1", "1.5", "1abc"} {
		w := do(router, http.MethodGet, "/students/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code, "id segment %q", id)
		assert.Zero(t, w.Body.Len())
	}
}

func TestListStudents(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	students := listStudents(t, router)
	require.Len(t, students, 2)
	assert.Equal(t, int64(1), students[0].ID)
	assert.Equal(t, int64(2), students[1].ID)
}

func TestListStudentsEmptyArray(t *testing.T) {
	router := newRouter(memory.New())

	w := do(router, http.MethodGet, "/students", "")
	require.Equal(t, http.StatusOK, w.Code)

	// Empty collection encodes as [], never null.
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestUpdateStudentPartialBody(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPut, "/students/2", `{"grade":"A+"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated types.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))

	// Only the provided field changes; the rest keep prior values.
	assert.Equal(t, types.Student{ID: 2, Name: "Jane Smith", Grade: "A+", Email: "jane.smith@example.com"}, updated)
}

func TestUpdateStudentAllFields(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPut, "/students/1",
		`{"name":"John D.","grade":"B","email":"jd@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated types.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, types.Student{ID: 1, Name: "John D.", Grade: "B", Email: "jd@x.com"}, updated)
}

// An unknown id is 404 even when the body is also invalid: existence
// is checked before the body is read.
func TestUpdateStudentUnknownIDBeatsBadBody(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPut, "/students/99", "not json")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestUpdateStudentBadBody(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodPut, "/students/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, w.Body.Len())

	w = do(router, http.MethodPut, "/students/1", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestDeleteStudent(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodDelete, "/students/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	w = do(router, http.MethodGet, "/students/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Len(t, listStudents(t, router), 1)
}

func TestDeleteStudentIdempotent(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodDelete, "/students/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Second delete: same status, no further effect.
	w = do(router, http.MethodDelete, "/students/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	assert.Len(t, listStudents(t, router), 1)
}

func TestDeleteStudentUnknownID(t *testing.T) {
	router := newRouter(memory.NewSeeded())

	w := do(router, http.MethodDelete, "/students/99", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Len(t, listStudents(t, router), 2)
}
