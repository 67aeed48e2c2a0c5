package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid day", input: "2024-06-10"},
		{name: "leap day", input: "2024-02-29"},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "unpadded month rejected", input: "2024-6-10", wantErr: true},
		{name: "slashes rejected", input: "2024/06/10", wantErr: true},
		{name: "nonexistent day rejected", input: "2023-02-29", wantErr: true},
		{name: "timestamp rejected", input: "2024-06-10T00:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDay)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, Day(tt.input), d)
				assert.NoError(t, d.Validate())
			}
		})
	}
}

func TestDayAddDays(t *testing.T) {
	d := Day("2024-06-10")
	assert.Equal(t, Day("2024-06-04"), d.AddDays(-6))
	assert.Equal(t, Day("2024-06-10"), d.AddDays(0))
	assert.Equal(t, Day("2024-07-01"), d.AddDays(21), "crosses month boundary")
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Day("2024-06-10"), DayOf(ts))
}

func TestDayOrdering(t *testing.T) {
	// Range queries compare days as strings; the format must sort by date.
	assert.True(t, Day("2024-06-04") < Day("2024-06-10"))
	assert.True(t, Day("2024-05-31") < Day("2024-06-01"))
	assert.True(t, Day("2023-12-31") < Day("2024-01-01"))
}
