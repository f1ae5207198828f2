package service

import (
	"errors"
	"fmt"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
)

// ── business errors ──

var (
	ErrValidation       = errors.New("validation failed")
	ErrScheduleConflict = errors.New("schedule overlaps an existing schedule of this saint")
	ErrConcurrentUpdate = errors.New("schedule was modified concurrently, retry")

	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrSaintNotFound     = errors.New("saint not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrAdminUserNotFound = errors.New("admin user not found")

	ErrLocationInUse = errors.New("location is referenced by schedules")
	ErrUsernameTaken = errors.New("username already exists")

	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrWrongPassword       = errors.New("current password is incorrect")
)

// validationError wraps ErrValidation with a client-facing reason.
func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ScheduleConflictError carries the schedules a candidate range collides
// with. errors.Is(err, ErrScheduleConflict) holds for it.
type ScheduleConflictError struct {
	Conflicts []dto.ScheduleResponse
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%s (%d conflicting)", ErrScheduleConflict.Error(), len(e.Conflicts))
}

func (e *ScheduleConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
