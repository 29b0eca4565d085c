package entity

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the calendar-date layout used on the wire and in DATE columns.
const DateLayout = time.DateOnly

// Date is a calendar day without time of day, held as midnight UTC.
// It renders as YYYY-MM-DD so what a client sends is what it reads back.
type Date struct {
	time.Time
}

// NewDate keeps only the calendar date part of t.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()

	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", value)
	}

	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.Wrap(err, "date must be a JSON string")
	}

	return d.UnmarshalText([]byte(value))
}
