package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{"2018-07-30", Monday},
		{"2018-07-31", Tuesday},
		{"2018-08-01", Wednesday},
		{"2018-08-02", Thursday},
		{"2018-08-03", Friday},
		{"2018-08-04", Saturday},
		{"2018-08-05", Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := time.Parse("2006-01-02", tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, WeekdayOf(date))
		})
	}
}

func TestWeekday_IsWeekend(t *testing.T) {
	for d := Monday; d <= Friday; d++ {
		assert.False(t, d.IsWeekend(), d.String())
	}
	assert.True(t, Saturday.IsWeekend())
	assert.True(t, Sunday.IsWeekend())
}

func TestWeekday_IsValid(t *testing.T) {
	assert.True(t, Monday.IsValid())
	assert.True(t, Sunday.IsValid())
	assert.False(t, Weekday(-1).IsValid())
	assert.False(t, Weekday(7).IsValid())
}

func TestWeekday_String(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Saturday", Saturday.String())
	assert.Equal(t, "Unknown", Weekday(9).String())
}
