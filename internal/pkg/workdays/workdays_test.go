package workdays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceNotice(t *testing.T) {
	// 2026-01-07 is a Wednesday
	today := date(2026, time.January, 7)

	tests := []struct {
		name     string
		target   time.Time
		expected int
	}{
		{
			name:     "same day yields zero notice",
			target:   today,
			expected: 0,
		},
		{
			name:     "past date yields zero notice",
			target:   date(2026, time.January, 2),
			expected: 0,
		},
		{
			name:     "next day",
			target:   date(2026, time.January, 8),
			expected: 1,
		},
		{
			name:     "friday of the same week",
			target:   date(2026, time.January, 9),
			expected: 2,
		},
		{
			name:     "saturday target counts only weekdays",
			target:   date(2026, time.January, 10),
			expected: 2,
		},
		{
			name:     "sunday target counts only weekdays",
			target:   date(2026, time.January, 11),
			expected: 2,
		},
		{
			name:     "monday of the next week skips the weekend",
			target:   date(2026, time.January, 12),
			expected: 3,
		},
		{
			name:     "two full weeks ahead",
			target:   date(2026, time.January, 21),
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AdvanceNotice(tt.target, today))
		})
	}
}

func TestAdvanceNoticeFromFriday(t *testing.T) {
	// 2026-01-09 is a Friday; the following Monday is one business day out
	friday := date(2026, time.January, 9)
	assert.Equal(t, 1, AdvanceNotice(date(2026, time.January, 12), friday))
}

func TestAdvanceNoticeIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, time.January, 7, 18, 30, 0, 0, time.UTC)
	target := time.Date(2026, time.January, 8, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, AdvanceNotice(target, today))
}

func TestIsBusinessDay(t *testing.T) {
	assert.True(t, IsBusinessDay(date(2026, time.January, 7)))   // Wednesday
	assert.False(t, IsBusinessDay(date(2026, time.January, 10))) // Saturday
	assert.False(t, IsBusinessDay(date(2026, time.January, 11))) // Sunday
}
