package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scrollmirror/enforcement-service/internal/verifier"
)

// VerifyTextHandler verifies every proper noun in a block of text against
// the scroll index.
func VerifyTextHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		result := verifier.VerifyText(req.Text)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"verification": result,
			"status":       "success",
		})
	}
}

// VerifyNameHandler verifies a single name from the URL path.
func VerifyNameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		name := vars["name"]

		if name == "" {
			http.Error(w, "Name is required", http.StatusBadRequest)
			return
		}

		verification := verifier.VerifyName(name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"verification": verification,
			"display":      verifier.FormatVerification(verification),
			"status":       "success",
		})
	}
}
