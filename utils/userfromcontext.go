package utils

import (
	"net/http"

	"talentrack/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	if userID, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return userID
	}
	return ""
}
