// Package validate provides pure field parsers for user-entered values.
// Each parser takes raw line input and returns a typed value or an error;
// the retry loop belongs to the caller.
package validate

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/poisedms/poised/internal/record"
)

// Validation errors.
var (
	ErrProjectNumber  = errors.New("project number must contain digits only")
	ErrDateFormat     = errors.New("date must be in YYYY-MM-DD format")
	ErrDateNotFuture  = errors.New("date must be later than today")
	ErrAmountFormat   = errors.New("amount must be a numeric value")
	ErrAmountNegative = errors.New("amount cannot be negative")
	ErrERFPrefix      = errors.New("ERF number must start with 'ERF'")
	ErrTelephone      = errors.New("telephone must be 10 to 15 digits, numbers only")
	ErrEmail          = errors.New("email must be in the form user@example.com")
	ErrAddress        = errors.New("address must include street, city, and country separated by commas")
)

var (
	projectNumberPattern = regexp.MustCompile(`^\d+$`)
	telephonePattern     = regexp.MustCompile(`^[0-9]{10,15}$`)
	emailPattern         = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	bareIDPattern        = regexp.MustCompile(`^\d+$`)
	suffixPattern        = regexp.MustCompile(`^\d{3}$`)
)

// ProjectNumber accepts only strings of one or more digits.
func ProjectNumber(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !projectNumberPattern.MatchString(raw) {
		return "", ErrProjectNumber
	}
	return raw, nil
}

// Date parses an ISO calendar date without any range requirement.
func Date(raw string) (time.Time, error) {
	d, err := time.Parse(record.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	return d, nil
}

// FutureDate parses an ISO calendar date that must be strictly after today.
func FutureDate(raw string, today time.Time) (time.Time, error) {
	d, err := Date(raw)
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !d.After(day) {
		return time.Time{}, ErrDateNotFuture
	}
	return d, nil
}

// Amount parses a non-negative decimal value. NaN and infinite spellings
// are rejected: they parse, but every comparison with NaN is false, which
// would let a bad value slip past the fee/paid checks downstream.
func Amount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrAmountFormat
	}
	if v < 0 {
		return 0, ErrAmountNegative
	}
	return v, nil
}

// ERFNumber requires the literal, case-sensitive "ERF" prefix.
func ERFNumber(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "ERF") {
		return "", ErrERFPrefix
	}
	return raw, nil
}

// Telephone requires exactly 10 to 15 ASCII digits.
func Telephone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !telephonePattern.MatchString(raw) {
		return "", ErrTelephone
	}
	return raw, nil
}

// Email requires the standard local@domain.tld form.
func Email(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !emailPattern.MatchString(raw) {
		return "", ErrEmail
	}
	return raw, nil
}

// Address requires more than 5 characters and at least one comma.
func Address(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) <= 5 || !strings.Contains(raw, ",") {
		return "", ErrAddress
	}
	return raw, nil
}

// EntityID accepts a bare numeric ID or prefix followed by exactly 3 digits.
func EntityID(prefix, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if bareIDPattern.MatchString(raw) {
		return raw, nil
	}
	rest, ok := strings.CutPrefix(raw, prefix)
	if ok && suffixPattern.MatchString(rest) {
		return raw, nil
	}
	return "", fmt.Errorf("ID must be numeric or '%s' followed by a 3-digit number", prefix)
}
