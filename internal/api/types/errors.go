package types

import (
	"net/http"

	appErr "github.com/youssefhammani/file-rouge-final/pkg/errors"
)

// StatusFor maps an application error code to its HTTP status. Conflicts
// (duplicate email, duplicate application, duplicate saved job) surface as
// 400, which is what API clients already expect.
func StatusFor(err error) int {
	switch appErr.CodeOf(err) {
	case appErr.CodeInvalid, appErr.CodeConflict:
		return http.StatusBadRequest
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeForbidden:
		return http.StatusForbidden
	case appErr.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
