package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"budgetwise/internal/models"
)

const (
	PeriodTypeYear  = "year"
	PeriodTypeMonth = "month"
	PeriodTypeDate  = "date"
)

var (
	ErrMissingParameter  = errors.New("missing required parameter")
	ErrInvalidPeriodType = errors.New("invalid period type or range")
)

// resolvePeriod turns a (period_type, start, end) triple into an inclusive
// window. It is a pure function: defaults for absent values are the caller's
// job, not the resolver's.
//
// The month predicate is a literal year-band AND month-band test, not a
// chronological range: start "2024-11", end "2025-02" yields the month band
// 11..2, which is empty, so the window matches nothing. The enumerated Ranges
// carry that exact behavior; RangeStart/RangeEnd still echo the parsed bounds.
func resolvePeriod(periodType, start, end, subcategory string) (*models.PeriodWindow, error) {
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: start and end are required", ErrMissingParameter)
	}

	var window *models.PeriodWindow
	var err error

	switch periodType {
	case PeriodTypeYear:
		window, err = resolveYearPeriod(start, end)
	case PeriodTypeMonth:
		window, err = resolveMonthPeriod(start, end)
	case PeriodTypeDate:
		window, err = resolveDatePeriod(start, end)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriodType, periodType)
	}
	if err != nil {
		return nil, err
	}

	window.Subcategory = subcategory
	return window, nil
}

func resolveYearPeriod(start, end string) (*models.PeriodWindow, error) {
	startYear, err := strconv.Atoi(start)
	if err != nil {
		return nil, fmt.Errorf("%w: start year %q", ErrInvalidPeriodType, start)
	}
	endYear, err := strconv.Atoi(end)
	if err != nil {
		return nil, fmt.Errorf("%w: end year %q", ErrInvalidPeriodType, end)
	}

	window := &models.PeriodWindow{
		RangeStart: dateOf(startYear, time.January, 1),
		RangeEnd:   dateOf(endYear, time.December, 31),
	}
	for year := startYear; year <= endYear; year++ {
		window.Ranges = append(window.Ranges, models.DateRange{
			Start: dateOf(year, time.January, 1),
			End:   dateOf(year, time.December, 31),
		})
	}
	return window, nil
}

func resolveMonthPeriod(start, end string) (*models.PeriodWindow, error) {
	startMonth, err := time.Parse("2006-01", start)
	if err != nil {
		return nil, fmt.Errorf("%w: start month %q", ErrInvalidPeriodType, start)
	}
	endMonth, err := time.Parse("2006-01", end)
	if err != nil {
		return nil, fmt.Errorf("%w: end month %q", ErrInvalidPeriodType, end)
	}

	window := &models.PeriodWindow{
		RangeStart: dateOf(startMonth.Year(), startMonth.Month(), 1),
		RangeEnd:   dateOf(endMonth.Year(), endMonth.Month(), daysInMonth(endMonth.Year(), endMonth.Month())),
	}

	// Cross product of the year band and the month band. A descending month
	// band (e.g. Nov..Feb) enumerates nothing rather than wrapping.
	for year := startMonth.Year(); year <= endMonth.Year(); year++ {
		for month := startMonth.Month(); month <= endMonth.Month(); month++ {
			window.Ranges = append(window.Ranges, monthRange(year, month))
		}
	}
	return window, nil
}

func resolveDatePeriod(start, end string) (*models.PeriodWindow, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", ErrInvalidPeriodType, start)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q", ErrInvalidPeriodType, end)
	}

	window := &models.PeriodWindow{
		RangeStart: startDate,
		RangeEnd:   endDate,
	}
	if !startDate.After(endDate) {
		window.Ranges = []models.DateRange{{Start: startDate, End: endDate}}
	}
	return window, nil
}

// monthRange returns the inclusive day span of one calendar month.
func monthRange(year int, month time.Month) models.DateRange {
	return models.DateRange{
		Start: dateOf(year, month, 1),
		End:   dateOf(year, month, daysInMonth(year, month)),
	}
}

// daysInMonth returns the number of days in the given month, leap years
// included. Day 0 of the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
