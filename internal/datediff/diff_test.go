package datediff_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-holiday/internal/caldate"
	"github.com/tartampluch/go-holiday/internal/datediff"
)

func d(year int, month time.Month, day int) caldate.Date {
	return caldate.Date{Year: year, Month: month, Day: day}
}

// TestCompute verifies the day count, the calendar month/year decomposition
// and both counting switches.
func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start caldate.Date
		end   caldate.Date
		opts  datediff.Options
		want  datediff.Result
	}{
		{
			name:  "January exclusive",
			start: d(2023, time.January, 1),
			end:   d(2023, time.January, 31),
			want:  datediff.Result{Days: 30},
		},
		{
			name:  "January inclusive reaches a full month",
			start: d(2023, time.January, 1),
			end:   d(2023, time.January, 31),
			opts:  datediff.Options{IncludeEndDay: true},
			want:  datediff.Result{Days: 31, Months: 1},
		},
		{
			name:  "Monday to Friday inclusive",
			start: d(2024, time.June, 10),
			end:   d(2024, time.June, 14),
			opts:  datediff.Options{IncludeEndDay: true},
			want:  datediff.Result{Days: 5},
		},
		{
			name:  "Four Gregorian centuries",
			start: d(1600, time.January, 1),
			end:   d(2000, time.January, 1),
			want:  datediff.Result{Days: 146097, Months: 4800, Years: 400},
		},
		{
			name:  "Over a year, no correction triggers",
			start: d(2023, time.January, 15),
			end:   d(2024, time.March, 10),
			opts:  datediff.Options{IncludeEveryStartedPeriod: true},
			want:  datediff.Result{Days: 420, Months: 13, Years: 1},
		},
		{
			name:  "Over a year without correction flag",
			start: d(2023, time.January, 15),
			end:   d(2024, time.March, 10),
			want:  datediff.Result{Days: 420, Months: 13, Years: 1},
		},
		{
			name:  "Both corrections trigger",
			start: d(2023, time.May, 20),
			end:   d(2024, time.March, 10),
			opts:  datediff.Options{IncludeEveryStartedPeriod: true},
			want:  datediff.Result{Days: 295, Months: 10, Years: 1},
		},
		{
			name:  "Both corrections disabled",
			start: d(2023, time.May, 20),
			end:   d(2024, time.March, 10),
			want:  datediff.Result{Days: 295, Months: 9, Years: 0},
		},
		{
			name:  "Equal month, later day: month correction only",
			start: d(2023, time.March, 20),
			end:   d(2024, time.March, 10),
			opts:  datediff.Options{IncludeEveryStartedPeriod: true},
			want:  datediff.Result{Days: 356, Months: 12, Years: 0},
		},
		{
			name:  "Equal month, equal day: no correction",
			start: d(2023, time.March, 10),
			end:   d(2024, time.March, 10),
			opts:  datediff.Options{IncludeEveryStartedPeriod: true},
			want:  datediff.Result{Days: 366, Months: 12, Years: 1},
		},
		{
			name:  "Earlier month, later day: no correction",
			start: d(2023, time.January, 20),
			end:   d(2023, time.March, 10),
			opts:  datediff.Options{IncludeEveryStartedPeriod: true},
			want:  datediff.Result{Days: 49, Months: 1, Years: 0},
		},
		{
			name:  "Corrections compare against the unadjusted end",
			start: d(2023, time.March, 31),
			end:   d(2024, time.February, 29),
			opts:  datediff.Options{IncludeEndDay: true, IncludeEveryStartedPeriod: true},
			want:  datediff.Result{Days: 336, Months: 12, Years: 1},
		},
		{
			name:  "Leap day to end of February",
			start: d(2024, time.February, 29),
			end:   d(2025, time.February, 28),
			want:  datediff.Result{Days: 365, Months: 11, Years: 0},
		},
		{
			name:  "End of month into shorter month",
			start: d(2023, time.January, 31),
			end:   d(2023, time.February, 28),
			want:  datediff.Result{Days: 28, Months: 0, Years: 0},
		},
		{
			name:  "Exact years",
			start: d(2000, time.January, 1),
			end:   d(2010, time.January, 1),
			want:  datediff.Result{Days: 3653, Months: 120, Years: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datediff.Compute(tt.start, tt.end, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCompute_SameDay checks that a span cannot be shorter than one day,
// whatever the switches.
func TestCompute_SameDay(t *testing.T) {
	t.Parallel()

	day := d(2023, time.July, 4)
	for _, opts := range []datediff.Options{
		{},
		{IncludeEndDay: true},
		{IncludeEveryStartedPeriod: true},
		{IncludeEndDay: true, IncludeEveryStartedPeriod: true},
	} {
		got, err := datediff.Compute(day, day, opts)
		require.NoError(t, err)
		assert.Equal(t, datediff.Result{Days: 1}, got, "options %+v", opts)
	}
}

func TestCompute_SameDayDifferentTimes(t *testing.T) {
	t.Parallel()

	morning := caldate.FromTime(time.Date(2023, time.July, 4, 6, 0, 0, 0, time.UTC))
	evening := caldate.FromTime(time.Date(2023, time.July, 4, 22, 0, 0, 0, time.UTC))

	got, err := datediff.Compute(evening, morning, datediff.Options{})
	require.NoError(t, err, "time of day must not make the range invalid")
	assert.Equal(t, datediff.Result{Days: 1}, got)
}

func TestCompute_InvalidRange(t *testing.T) {
	t.Parallel()

	_, err := datediff.Compute(d(2023, time.February, 1), d(2023, time.January, 31), datediff.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, datediff.ErrInvalidRange))

	var re *datediff.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, d(2023, time.February, 1), re.Start)
	assert.Contains(t, err.Error(), "2023-02-01 > 2023-01-31")
}

func TestComputeStrings(t *testing.T) {
	t.Parallel()

	clock := caldate.FixedClock(time.Date(2023, time.January, 31, 12, 0, 0, 0, time.UTC))

	got, err := datediff.ComputeStrings("2023-01-01", "today", datediff.Options{}, clock)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Days)

	_, err = datediff.ComputeStrings("2023-01-01", "31/01/2023", datediff.Options{}, clock)
	assert.True(t, errors.Is(err, caldate.ErrDateParse))

	_, err = datediff.ComputeStrings("bogus", "2023-01-31", datediff.Options{}, clock)
	assert.True(t, errors.Is(err, caldate.ErrDateParse))

	_, err = datediff.ComputeStrings("tomorrow", "today", datediff.Options{}, clock)
	assert.True(t, errors.Is(err, datediff.ErrInvalidRange))
}

// TestCalculator_Idempotent verifies the result is computed once and reused.
func TestCalculator_Idempotent(t *testing.T) {
	t.Parallel()

	calc := datediff.NewCalculator(d(2023, time.January, 15), d(2024, time.March, 10),
		datediff.Options{IncludeEveryStartedPeriod: true})

	first, err := calc.Result()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			again, err := calc.Result()
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}()
	}
	wg.Wait()

	days, err := calc.Days()
	require.NoError(t, err)
	months, _ := calc.Months()
	years, _ := calc.Years()
	assert.Equal(t, first, datediff.Result{Days: days, Months: months, Years: years})
}

func TestCalculator_CachesError(t *testing.T) {
	t.Parallel()

	calc := datediff.NewCalculator(d(2024, time.January, 2), d(2024, time.January, 1), datediff.Options{})

	_, err1 := calc.Result()
	_, err2 := calc.Years()
	assert.True(t, errors.Is(err1, datediff.ErrInvalidRange))
	assert.Equal(t, err1, err2)
}
