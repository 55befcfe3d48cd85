package utils

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	testCases := []struct {
		name             string
		year, month, day int
		now              time.Time
		expected         []string
	}{
		{
			name: "two days before now",
			year: 2007, month: 10, day: 1,
			now:      time.Date(2007, 10, 3, 15, 30, 0, 0, time.Local),
			expected: []string{"2007-10-01", "2007-10-02"},
		},
		{
			name: "start is today",
			year: 2007, month: 10, day: 3,
			now:      time.Date(2007, 10, 3, 0, 0, 0, 0, time.Local),
			expected: nil,
		},
		{
			name: "start after today",
			year: 2008, month: 1, day: 1,
			now:      time.Date(2007, 10, 3, 0, 0, 0, 0, time.Local),
			expected: nil,
		},
		{
			name: "crosses month and leap day",
			year: 2008, month: 2, day: 28,
			now:      time.Date(2008, 3, 2, 23, 59, 0, 0, time.Local),
			expected: []string{"2008-02-28", "2008-02-29", "2008-03-01"},
		},
		{
			name: "crosses year",
			year: 2007, month: 12, day: 31,
			now:      time.Date(2008, 1, 2, 8, 0, 0, 0, time.Local),
			expected: []string{"2007-12-31", "2008-01-01"},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			days, err := DaysUntil(test.year, test.month, test.day, test.now)
			require.NoError(t, err)
			require.Equal(t, test.expected, slices.Collect(days))
		})
	}
}

func TestDaysUntilIsRestartable(t *testing.T) {
	days, err := DaysUntil(2007, 10, 1, time.Date(2007, 10, 5, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	first := slices.Collect(days)
	second := slices.Collect(days)
	require.Len(t, first, 4)
	require.Equal(t, first, second)

	var partial []string
	for day := range days {
		partial = append(partial, day)
		if len(partial) == 2 {
			break
		}
	}
	require.Equal(t, []string{"2007-10-01", "2007-10-02"}, partial)
}

func TestDaysInvalidDate(t *testing.T) {
	testCases := [][3]int{
		{2007, 13, 1},
		{2007, 0, 1},
		{2007, 2, 30},
		{2007, 2, 29},
		{2007, 4, 31},
		{2007, 10, 0},
	}
	for _, tc := range testCases {
		days, err := Days(tc[0], tc[1], tc[2])
		require.ErrorIs(t, err, ErrInvalidDate)
		require.Nil(t, days)
	}
}

func TestDaysFromAndNextDay(t *testing.T) {
	days, err := DaysFrom("2007-10-01", time.Date(2007, 10, 3, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)
	require.Equal(t, []string{"2007-10-01", "2007-10-02"}, slices.Collect(days))

	_, err = DaysFrom("2007-10-32", time.Now())
	require.ErrorIs(t, err, ErrInvalidDate)

	next, err := NextDay("2008-02-28")
	require.NoError(t, err)
	require.Equal(t, "2008-02-29", next)

	_, err = NextDay("yesterday")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestListingURL(t *testing.T) {
	link, err := ListingURL("https://news.ycombinator.com/front", "2007-10-01", 0)
	require.NoError(t, err)
	require.Equal(t, "https://news.ycombinator.com/front?day=2007-10-01&p=1", link)

	link, err = ListingURL("http://localhost:9999/front?x=1", "2007-10-02", 3)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999/front?day=2007-10-02&p=4&x=1", link)

	_, err = ListingURL("http://localhost/front", "2007-10-02", -1)
	require.Error(t, err)

	_, err = ListingURL("://bad", "2007-10-02", 0)
	require.Error(t, err)
}
