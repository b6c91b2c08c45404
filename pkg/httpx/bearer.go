package httpx

import (
	"net/http"
	"strings"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively. Anything else,
// including an empty token or extra fields, reports false.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// WriteBearerChallenge writes an RFC 6750 challenge header followed by an
// ErrorBody.
func WriteBearerChallenge(w http.ResponseWriter, code int, errCode, description string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+errCode+`", error_description="`+description+`"`)
	WriteError(w, code, errCode, description)
}
