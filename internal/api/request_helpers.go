package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
)

// taskIDParam is the chi path parameter holding a task id.
const taskIDParam = "id"

// getPathID extracts the task id from the URL path.
// The value is passed through as-is; the store decides whether it names a task.
func getPathID(r *http.Request) string {
	return chi.URLParam(r, taskIDParam)
}

// decodeBody decodes the request body for validation, writing a 400 and
// returning false if it is not valid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request) (any, bool) {
	body, err := shared.DecodeJSONBody(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return nil, false
	}
	return body, true
}

// handleServiceError writes the response for a failed service call.
// internalMessage is what the client sees when the failure is not theirs.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, internalMessage string) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), safeMessage(err, internalMessage), err)
}
