package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
)

// Kind classifies service errors for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified error whose message is safe to return to clients.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string   { return e.Msg }
func (e *Error) ErrorKind() Kind { return e.Kind }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Validation returns a KindValidation error with msg.
func Validation(msg string) error {
	return newError(KindValidation, msg)
}

type kinded interface {
	ErrorKind() Kind
}

// KindOf returns the classification of err, KindInternal when unclassified.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return KindInternal
}

// MessageOf returns the client-facing message of a classified error. Wrapping
// context added with fmt.Errorf is not included.
func MessageOf(err error) string {
	var k kinded
	if errors.As(err, &k) {
		if e, ok := k.(error); ok {
			return e.Error()
		}
	}
	return err.Error()
}

var (
	ErrInvalidCredentials       = newError(KindAuth, "Invalid credentials")
	ErrAuthRequired             = newError(KindAuth, "Authentication required")
	ErrCurrentPasswordIncorrect = newError(KindAuth, "Current password is incorrect")
	ErrTOTPRequired             = newError(KindAuth, "TOTP code required")
	ErrInvalidTOTPCode          = newError(KindAuth, "Invalid TOTP code")

	ErrUsernameOrEmailTaken = newError(KindConflict, "Username or email already exists")
	ErrEmailInUse           = newError(KindConflict, "Email already exists")
	ErrUsernameInUse        = newError(KindConflict, "Username already exists")
	ErrEmployeeEmailExists  = newError(KindConflict, "Employee with this email already exists")
	ErrMFAAlreadyEnabled    = newError(KindConflict, "MFA already enabled")

	ErrAdminNotFound     = newError(KindNotFound, "Admin not found")
	ErrEmployeeNotFound  = newError(KindNotFound, "Employee not found")
	ErrNoAttendanceToday = newError(KindNotFound, "No attendance record found for today")

	ErrMFANotEnrolled = newError(KindValidation, "MFA not enrolled")
	ErrMFANotEnabled  = newError(KindValidation, "MFA not enabled")
)

// AlreadyMarkedError is returned when an employee already has attendance for
// the current local day.
type AlreadyMarkedError struct {
	Existing domain.Attendance
	Employee domain.Employee
}

func (e *AlreadyMarkedError) Error() string   { return "Attendance already marked for today" }
func (e *AlreadyMarkedError) ErrorKind() Kind { return KindConflict }

// EmployeeNotFoundError carries "did you mean" hints for a failed lookup.
type EmployeeNotFoundError struct {
	SearchedID  string
	Suggestions []domain.Employee
}

func (e *EmployeeNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return "Employee not found. Please check the employee ID or contact administrator."
	}

	hints := make([]string, 0, len(e.Suggestions))
	for _, s := range e.Suggestions {
		hints = append(hints, fmt.Sprintf("%s (ID: %d)", s.Name, s.ID))
	}
	return "Employee not found. Did you mean: " + strings.Join(hints, ", ") + "?"
}

func (e *EmployeeNotFoundError) ErrorKind() Kind { return KindNotFound }
