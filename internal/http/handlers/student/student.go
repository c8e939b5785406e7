// Package student contains all HTTP handlers for the Student resource.
//
// HANDLER PATTERN — CLOSURE / FACTORY:
// ────────────────────────────────────
// The router expects handlers with the signature
//
//	func(http.ResponseWriter, *http.Request)
//
// which has no room for dependencies. Each exported function here is a
// factory: it takes the storage dependency once at registration time
// and returns the actual handler, which closes over it.
//
//	router.HandleFunc("POST /students", student.New(store))
//
// Failure responses (400/404) carry empty bodies; the reason is logged,
// not sent to the client.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/campushq/student-registry/internal/storage"
	"github.com/campushq/student-registry/internal/types"
	"github.com/campushq/student-registry/internal/utils/response"
)

// parseID extracts and parses the {id} path segment.
//
// The route pattern accepts any segment, so the integer check happens
// here: a segment that is not a non-negative integer is treated the
// same as a route that never matched — 404, not 400. Mirrors the
// behavior of typed path converters (/students/abc is not a student
// URL at all).
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /students
// Creates a new student from the JSON request body.
//
// Request body (JSON) — all three fields must be present:
//
//	{ "name": "Al", "grade": "C", "email": "al@x.com" }
//
// Success response (201 Created) — the full created record:
//
//	{ "id": 3, "name": "Al", "grade": "C", "email": "al@x.com" }
//
// Error responses:
//
//	400 Bad Request — empty body, malformed JSON, or a missing field
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var req types.CreateStudentRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			slog.Info("create rejected: empty request body")
			response.WriteEmpty(w, http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Info("create rejected: malformed body", slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusBadRequest)
			return
		}

		// Presence check only: required fails on nil pointers, so a key
		// set to "" still passes. See types.CreateStudentRequest.
		if err := validator.New().Struct(req); err != nil {
			slog.Info("create rejected: missing fields", slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusBadRequest)
			return
		}

		student, err := store.CreateStudent(*req.Name, *req.Grade, *req.Email)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusInternalServerError)
			return
		}

		slog.Info("student created", slog.Int64("id", student.ID))
		response.WriteJSON(w, http.StatusCreated, student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /students/{id}
// Fetches a single student by id.
//
// Success response (200 OK):
//
//	{ "id": 1, "name": "John Doe", "grade": "A", "email": "john.doe@example.com" }
//
// Error responses:
//
//	404 Not Found — no record with that id, or the segment is not a
//	                non-negative integer
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			response.WriteEmpty(w, http.StatusNotFound)
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, err := store.GetStudentByID(id)
		if errors.Is(err, storage.ErrStudentNotFound) {
			response.WriteEmpty(w, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("error getting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusInternalServerError)
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /students
// Returns every student as a JSON array in insertion order.
//
// Success response (200 OK):
//
//	[
//	  { "id": 1, "name": "John Doe", ... },
//	  { "id": 2, "name": "Jane Smith", ... }
//	]
//
// Returns an empty array [] (not null) when there are no students.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := store.GetStudents()
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusInternalServerError)
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /students/{id}
// Merge-PUT: fields present in the body overwrite the stored record;
// absent fields keep their prior values.
//
// Request body (JSON) — any subset of the three fields:
//
//	{ "grade": "A+" }
//
// Success response (200 OK) — the full updated record:
//
//	{ "id": 2, "name": "Jane Smith", "grade": "A+", "email": "jane.smith@example.com" }
//
// Error responses:
//
//	404 Not Found   — no record with that id (checked before the body)
//	400 Bad Request — empty or malformed body
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			response.WriteEmpty(w, http.StatusNotFound)
			return
		}
		slog.Info("updating a student", slog.Int64("id", id))

		// Existence first: an unknown id is 404 even when the body is
		// also bad.
		if _, err := store.GetStudentByID(id); err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteEmpty(w, http.StatusNotFound)
				return
			}
			slog.Error("error getting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusInternalServerError)
			return
		}

		var upd types.StudentUpdate
		err := json.NewDecoder(r.Body).Decode(&upd)
		if errors.Is(err, io.EOF) {
			slog.Info("update rejected: empty request body", slog.Int64("id", id))
			response.WriteEmpty(w, http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Info("update rejected: malformed body",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusBadRequest)
			return
		}

		updated, err := store.UpdateStudentByID(id, upd)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteEmpty(w, http.StatusNotFound)
				return
			}
			slog.Error("error updating student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusInternalServerError)
			return
		}

		slog.Info("student updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /students/{id}
// Removes the matching record. Idempotent: deleting an id that does
// not exist is still a success.
//
// Success response: 204 No Content, empty body — whether or not the
// record existed.
//
// Error responses:
//
//	404 Not Found — the segment is not a non-negative integer
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			response.WriteEmpty(w, http.StatusNotFound)
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		if err := store.DeleteStudentByID(id); err != nil {
			slog.Error("error deleting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteEmpty(w, http.StatusInternalServerError)
			return
		}

		response.WriteEmpty(w, http.StatusNoContent)
	}
}
