// Package health contains the handlers for the service's two
// non-resource routes: the root welcome message and the liveness probe.
package health

import (
	"net/http"

	"github.com/campushq/student-registry/internal/utils/response"
)

// welcomeMessage is the plain-text body served at the root URL.
const welcomeMessage = "Welcome to the Student API! Try accessing /students to see all students."

// healthResponse is the GET /health body.
type healthResponse struct {
	Status string `json:"status"`
}

// Welcome handles GET /.
// Returns a plain-text pointer at the students collection. Always 200.
func Welcome(w http.ResponseWriter, r *http.Request) {
	response.WriteText(w, http.StatusOK, welcomeMessage)
}

// Check handles GET /health.
// Intentionally lightweight — no storage access, no dependencies — so
// orchestrators and load balancers can use it as a liveness probe.
// Always returns 200 {"status":"healthy"}.
func Check(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}
