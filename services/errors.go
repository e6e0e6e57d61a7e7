package services

import (
	"errors"

	"popcornhour/models"

	"gorm.io/gorm"
)

type statusCoder interface {
	StatusCode() int
}

// translateError turns repository errors into domain errors. Errors that are
// already domain errors pass through unchanged.
func translateError(err error, notFound string) error {
	if err == nil {
		return nil
	}

	var coded statusCoder
	switch {
	case errors.As(err, &coded):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrorNotFound{Message: notFound}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrorConflict{Message: "record already exists"}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.ErrorConflict{Message: "record is still referenced"}
	default:
		return models.ErrorInternalServer{Err: err}
	}
}
