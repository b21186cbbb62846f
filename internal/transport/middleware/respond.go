package middleware

import (
	"fmt"
	"net/http"
)

// writeJSONError emits an error in the API envelope so middleware rejections
// look the same to clients as handler errors.
func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"success":false,"error":{"code":%q,"message":%q}}`+"\n", code, message)
}
