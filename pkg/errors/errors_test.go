package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert schedule: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name      string
		err       error
		unique    bool
		fk        bool
		check     bool
		exclusion bool
	}{
		{"nil", nil, false, false, false, false},
		{"plain", errors.New("boom"), false, false, false, false},
		{"pg unique", wrap("23505"), true, false, false, false},
		{"gorm duplicated", gorm.ErrDuplicatedKey, true, false, false, false},
		{"pg fk", wrap("23503"), false, true, false, false},
		{"gorm fk", fmt.Errorf("x: %w", gorm.ErrForeignKeyViolated), false, true, false, false},
		{"pg check", wrap("23514"), false, false, true, false},
		{"sqlite check", errors.New("CHECK constraint failed: chk_schedules_dates"), false, false, true, false},
		{"pg exclusion", wrap("23P01"), false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.unique {
				t.Errorf("IsUniqueViolation = %v", got)
			}
			if got := IsForeignKeyViolation(tt.err); got != tt.fk {
				t.Errorf("IsForeignKeyViolation = %v", got)
			}
			if got := IsCheckViolation(tt.err); got != tt.check {
				t.Errorf("IsCheckViolation = %v", got)
			}
			if got := IsExclusionViolation(tt.err); got != tt.exclusion {
				t.Errorf("IsExclusionViolation = %v", got)
			}
		})
	}
}
