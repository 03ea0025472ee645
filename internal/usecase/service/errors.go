package service

import (
	"errors"
	"fmt"
	"strings"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func WrapError(domainError *DomainError, err error) error {
	return &DomainError{
		Code:    domainError.Code,
		Message: domainError.Message,
		Err:     err,
	}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is сравнивает доменные ошибки по коду и сообщению, чтобы обёрнутая
// через WrapError ошибка находилась errors.Is по исходному значению
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

var (
	// NOT_FOUND
	ErrObjectiveNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "objective not found",
	}
	ErrTeamNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "team not found",
	}
	ErrReportKindNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "report kind not found",
	}

	// INVALID_INPUT
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}

	// REPORT_FAILED
	ErrReportFailed = &DomainError{
		Code:    "REPORT_FAILED",
		Message: "report generation failed",
	}
)

var errEmptyValue = errors.New("value is empty")

// normalizeID обрезает пробелы и отклоняет пустой идентификатор
func normalizeID(raw, field string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fmt.Errorf("%s: %w", field, errEmptyValue)
	}
	return id, nil
}
