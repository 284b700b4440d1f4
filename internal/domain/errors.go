package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")

	ErrShowNotFound    = errors.New("show not found")
	ErrHallNotFound    = errors.New("hall not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrTheaterNotFound = errors.New("theater not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrLockDenied            = errors.New("seats are being booked by another user, please try again")
	ErrSeatsUnavailable      = errors.New("some of the selected seats are not available")
	ErrBookingNotCancellable = errors.New("only confirmed bookings can be cancelled")
	ErrInvalidSeatSelection  = errors.New("seat selection must be non-empty and contain no duplicates")
	ErrInvalidSeatLayout     = errors.New("hall layout must map row numbers 1-100 to seat counts 1-100, with at most 2000 seats in total")

	ErrDuplicateSeats     = errors.New("seats already exist for show")
	ErrInvariantViolation = errors.New("seat inventory invariant violated")
)

// IsNotFound reports whether err means a referenced catalog or booking record is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound) ||
		errors.Is(err, ErrShowNotFound) ||
		errors.Is(err, ErrHallNotFound) ||
		errors.Is(err, ErrMovieNotFound) ||
		errors.Is(err, ErrTheaterNotFound) ||
		errors.Is(err, ErrBookingNotFound)
}

// IsRetryable reports whether the caller may re-attempt the request as is or
// with a different seat set.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrLockDenied) || errors.Is(err, ErrSeatsUnavailable)
}
