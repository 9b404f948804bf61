package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"petcare-go/internal/domain/civil"
)

// pathID reads a positive integer route parameter. On failure it writes a
// 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return id, true
}

func parseDateRequired(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	return civil.ParseDate(value)
}

// parseDateOptional returns nil for an empty value.
func parseDateOptional(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := civil.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(civil.DateLayout)
}

func formatDateOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := formatDate(*t)
	return &formatted
}
