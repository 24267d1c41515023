package domain

import "errors"

var (
	ErrDriveNotFound      = errors.New("drive not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrTokenNotFound      = errors.New("qr token does not match any attendance record for this drive")
)

var (
	ErrAlreadyBooked       = errors.New("user already has a slot for this drive")
	ErrDriveNotBookable    = errors.New("drive is not open for booking")
	ErrUnknownRole         = errors.New("role is not declared for this drive")
	ErrCancelWindowClosed  = errors.New("bookings can be cancelled no later than 24 hours before the drive")
	ErrAttendanceCancelled = errors.New("attendance record is cancelled")
	ErrAlreadyCheckedIn    = errors.New("qr token can be scanned only once")
	ErrNotDriveDay         = errors.New("check-in is only possible on the day of the drive")
	ErrAttendanceCheckedIn = errors.New("checked-in attendance cannot be cancelled")
)

var (
	ErrNotVolunteer = errors.New("only volunteers can book drive slots")
	ErrNotOrganizer = errors.New("only organizers can perform this action")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
