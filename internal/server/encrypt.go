package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"encmachine/internal/caesar"
	"encmachine/internal/ctxlog"
)

type encryptRequest struct {
	Word string `json:"word"`
}

type encryptResponse struct {
	Word      string `json:"word"`
	Encrypted string `json:"encrypted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
	}
}

func encryptHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req encryptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		enc, err := caesar.EncryptWord(req.Word)
		if err != nil {
			if errors.Is(err, caesar.ErrInvalidCharacter) {
				writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
				return
			}
			writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "encryption failed"})
			return
		}

		writeJSON(w, r, http.StatusOK, encryptResponse{Word: req.Word, Encrypted: enc})
	})
}
