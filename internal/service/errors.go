package service

import (
	"errors"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
	"gorm.io/gorm"
)

// storeErr classifies a repository error. what names the entity, e.g. "test".
func storeErr(err error, what string) error {
	var appErr *apperror.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.Wrap(apperror.KindNotFound, what+" not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Wrap(apperror.KindConflict, what+" already exists", err)
	}
	return apperror.Upstream("failed to access "+what, err)
}
