package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/msgboard-dev/msgboard/internal/config"
	"github.com/msgboard-dev/msgboard/internal/service"
)

type Handler struct {
	board  service.BoardService
	thread service.ThreadService
	cfg    *config.Config
}

func New(board service.BoardService, thread service.ThreadService, cfg *config.Config) *Handler {
	return &Handler{board, thread, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Print(err.Error())
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
}

func writeSuccess(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("success"))
}
