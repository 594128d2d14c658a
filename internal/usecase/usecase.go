package usecase

import (
	"errors"
	"time"

	"hr-inventory-backend/internal/apperror"
	"hr-inventory-backend/internal/model"
	"hr-inventory-backend/internal/rbac"
	"hr-inventory-backend/internal/repository"
)

const dateLayout = "2006-01-02"

// scopeUnit returns nil for a super admin (every unit) and the actor's own unit otherwise.
func scopeUnit(actor *model.Personnel) *uint {
	if actor.Role == rbac.RoleSuperAdmin {
		return nil
	}
	unitID := actor.UnitID
	return &unitID
}

func inScope(scope *uint, unitID uint) bool {
	return scope == nil || *scope == unitID
}

// lookupErr turns a repository read failure into NotFound or Internal.
func lookupErr(err error, notFoundMsg string) error {
	if repository.IsNotFound(err) {
		return apperror.NotFound(notFoundMsg)
	}
	return dbErr(err)
}

// dbErr passes domain errors through untouched and hides everything else.
func dbErr(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal("Database error", err)
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.Validation(field + " must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
