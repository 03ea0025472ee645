package repository

import (
	"errors"
	"io/fs"

	"github.com/niklvrr/okr-dashboard/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrSnapshotUnavailable = errors.New("okr snapshot unavailable")
)

// handleSnapshotError сводит ошибки чтения и разбора снимка к ошибкам репозитория
func handleSnapshotError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return errors.Join(ErrSnapshotUnavailable, err)
	}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return errors.Join(ErrInvalidInput, err)
	}
	if errors.Is(err, domain.ErrInvalidDate) {
		return errors.Join(ErrInvalidInput, err)
	}
	return err
}
