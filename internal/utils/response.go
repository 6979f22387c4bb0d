package utils

import (
	"encoding/json"
	"net/http"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/logger"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, APIResponse{Success: true, Data: data})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}

// Error writes the {message, error?} envelope. The optional err adds the
// underlying cause for the admin without leaking stack detail in msg.
func Error(w http.ResponseWriter, status int, msg string, errs ...error) {
	resp := APIResponse{Success: false, Message: msg}
	if len(errs) > 0 && errs[0] != nil {
		resp.Error = errs[0].Error()
		logger.Error("[%d] %s: %v", status, msg, errs[0])
	} else {
		logger.Error("[%d] %s", status, msg)
	}
	JSON(w, status, resp)
}
