package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"teams-api/internal/infra/transport/rest/gen"
)

func WriteError(w http.ResponseWriter, code int, err gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(err)
}

// BindingErrorHandler maps parameter binding failures of the generated
// wrapper to route semantics: a path segment that does not parse addresses no
// resource, so the route does not match and the answer is 404. Everything
// else keeps the generated default of 400.
func BindingErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var invalidFormat *gen.InvalidParamFormatError
	if errors.As(err, &invalidFormat) {
		http.NotFound(w, r)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}
