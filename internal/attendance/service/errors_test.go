package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad"), KindValidation},
		{"auth sentinel", ErrInvalidCredentials, KindAuth},
		{"wrapped conflict", fmt.Errorf("signup: %w", ErrUsernameOrEmailTaken), KindConflict},
		{"not found", ErrEmployeeNotFound, KindNotFound},
		{"already marked", &AlreadyMarkedError{}, KindConflict},
		{"employee suggestions", &EmployeeNotFoundError{SearchedID: "x"}, KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Invalid credentials", MessageOf(fmt.Errorf("signin: %w", ErrInvalidCredentials)))
	require.Equal(t, "boom", MessageOf(errors.New("boom")))
}

func TestEmployeeNotFoundErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("without suggestions", func(t *testing.T) {
		err := &EmployeeNotFoundError{SearchedID: "99"}
		require.Equal(t, "Employee not found. Please check the employee ID or contact administrator.", err.Error())
	})

	t.Run("with suggestions", func(t *testing.T) {
		err := &EmployeeNotFoundError{
			SearchedID: "bo",
			Suggestions: []domain.Employee{
				{ID: 4, Name: "Bob"},
				{ID: 9, Name: "Bobby"},
			},
		}
		require.Equal(t, "Employee not found. Did you mean: Bob (ID: 4), Bobby (ID: 9)?", err.Error())
	})
}
