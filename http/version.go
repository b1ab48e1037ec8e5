package http

import (
	"net/http"

	"github.com/segmentio/encoding/json"
)

func HandleVersion(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		body, _ := json.Marshal(map[string]string{"version": version})
		w.Write(body)
	}
}
