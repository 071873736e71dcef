package directory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeFieldErrors answers a form submission that failed validation with the
// per-field messages; nothing was persisted.
func writeFieldErrors(w http.ResponseWriter, errs FieldErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reports a duplicate key on a unique column.
func isUniqueViolation(err error) bool { return pgErrCode(err) == "23505" }

// isProtectedReference reports a delete rejected because other rows still
// reference the target.
func isProtectedReference(err error) bool { return pgErrCode(err) == "23503" }
