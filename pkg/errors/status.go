package errors

import "net/http"

// HTTPStatus maps an error to the status code the preview server returns.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case "":
		if err == nil {
			return http.StatusOK
		}
		return http.StatusInternalServerError
	case ErrCodeNotFound, ErrCodeDeckNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput, ErrCodeInvalidDeck, ErrCodeInvalidFormat,
		ErrCodeInvalidTheme, ErrCodeInvalidColor, ErrCodeInvalidPath:
		return http.StatusBadRequest
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
