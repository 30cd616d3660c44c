package admission

import "errors"

var (
	ErrInvalidDates = errors.New("discharge date must not be before admission date")
	ErrStayTooLong  = errors.New("stay exceeds maximum number of days")
)

// ValidateDates protege el invariante admission <= discharge.
// Fechas vacías son válidas (el formulario todavía se está llenando).
func ValidateDates(h Header, maxStayDays int) error {
	from, okFrom := parseDate(h.AdmissionDate)
	to, okTo := parseDate(h.DischargeDate)
	if !okFrom || !okTo {
		return nil
	}
	if to.Before(from) {
		return ErrInvalidDates
	}
	if maxStayDays > 0 && daysBetween(from, to)+1 > maxStayDays {
		return ErrStayTooLong
	}
	return nil
}
