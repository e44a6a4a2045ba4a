package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/youssefhammani/file-rouge-final/internal/api/types"
	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
	"github.com/youssefhammani/file-rouge-final/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an application error to its HTTP status and the
// {success:false, message} envelope. Unexpected errors are logged; their
// message still reaches the client per the error contract.
func writeError(w http.ResponseWriter, err error) {
	status := types.StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, types.Fail(appErr.MessageOf(err)))
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.Fail(msg))
}
