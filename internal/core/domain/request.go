package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the accepted day/month/year date format.
// Day and month may omit the leading zero.
const DateLayout = "2/1/2006"

// Request field names reported in InputError.
const (
	FieldLine      = "input"
	FieldDate      = "date"
	FieldSmallDogs = "small dogs"
	FieldBigDogs   = "big dogs"
)

// QuoteRequest is a parsed pricing query.
type QuoteRequest struct {
	Date      time.Time
	Weekday   Weekday
	SmallDogs int
	BigDogs   int
}

// NewQuoteRequest builds a request for the given date.
func NewQuoteRequest(date time.Time, smallDogs, bigDogs int) QuoteRequest {
	return QuoteRequest{
		Date:      date,
		Weekday:   WeekdayOf(date),
		SmallDogs: smallDogs,
		BigDogs:   bigDogs,
	}
}

// ParseQuoteRequest parses "<day/month/year> <small dogs> <big dogs>".
// Every failure is an *InputError matching ErrInvalidInput.
func ParseQuoteRequest(line string) (QuoteRequest, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return QuoteRequest{}, &InputError{Field: FieldLine, Value: line, Err: ErrInvalidInput}
	}

	date, err := time.Parse(DateLayout, fields[0])
	if err != nil {
		return QuoteRequest{}, &InputError{Field: FieldDate, Value: fields[0], Err: ErrInvalidDate}
	}

	small, err := parseQuantity(FieldSmallDogs, fields[1])
	if err != nil {
		return QuoteRequest{}, err
	}
	big, err := parseQuantity(FieldBigDogs, fields[2])
	if err != nil {
		return QuoteRequest{}, err
	}

	return NewQuoteRequest(date, small, big), nil
}

func parseQuantity(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, &InputError{Field: field, Value: value, Err: ErrInvalidQuantity}
	}
	return n, nil
}
