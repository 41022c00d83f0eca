package handlers

import (
	"encoding/json"
	"net/http"
)

// The REST routes answer with {status: "OK"|"ERR"|"FIL", data}. The
// view-layer CRUD shortcuts answer with {status: "success"|"error",
// message|error}. Both envelopes predate this codebase and both are kept.

// APIResponse is the REST envelope
type APIResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ViewResponse is the view-layer shortcut envelope
type ViewResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondOK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Status: "OK", Data: data})
}

func respondErr(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, APIResponse{Status: "ERR", Data: message})
}

// respondFil is the upload-specific 400 used when the thumbnail is missing
func respondFil(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, APIResponse{Status: "FIL", Data: message})
}

func respondViewSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, ViewResponse{Status: "success", Message: message})
}

func respondViewError(w http.ResponseWriter, code int, err string) {
	writeJSON(w, code, ViewResponse{Status: "error", Error: err})
}
