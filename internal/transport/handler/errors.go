package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/niklvrr/okr-dashboard/internal/usecase/service"
)

const internalErrorCode = "INTERNAL_ERROR"

// код доменной ошибки -> HTTP статус, всё остальное 500
var statusByCode = map[string]int{
	"NOT_FOUND":     http.StatusNotFound,
	"INVALID_INPUT": http.StatusBadRequest,
	"REPORT_FAILED": http.StatusInternalServerError,
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// HandleError переводит ошибку сервиса в статус и тело ответа
func HandleError(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusOK, ErrorResponse{}
	}

	var domainErr *service.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError, InternalError()
	}
	return mapErrorCodeToHTTPStatus(domainErr.Code), newErrorResponse(domainErr.Code, domainErr.Message)
}

func InternalError() ErrorResponse {
	return newErrorResponse(internalErrorCode, "internal server error")
}

func mapErrorCodeToHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, statusCode int, errResp ErrorResponse) {
	WriteJSON(w, statusCode, errResp)
}

// WriteJSON пишет тело в JSON, ошибка кодирования после WriteHeader уже не доставляется
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
