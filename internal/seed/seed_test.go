package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDailyFormatHasNoZeroPadding(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "2024-1-1"},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "2024-12-31"},
		{time.Date(2025, time.September, 7, 12, 30, 0, 0, time.UTC), "2025-9-7"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Daily(tc.date))
	}
}

func TestPracticeSeedsVary(t *testing.T) {
	a, err := Practice()
	require.NoError(t, err)
	b, err := Practice()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
