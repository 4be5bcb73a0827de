package main

import (
	"sort"
	"time"
)

// SliceTotal is one entry of a breakdown: a label and its summed hours.
type SliceTotal struct {
	Label string
	Hours float64
}

// DailySummary aggregates all records logged against a single day.
// ByActivity and ByCategory are ordered by descending summed hours, ties
// kept in first-occurrence order.
type DailySummary struct {
	Date        time.Time
	TotalHours  float64
	RecordCount int
	TopActivity ActivityRecord
	ByActivity  []SliceTotal
	ByCategory  []SliceTotal
}

// Summarize filters the table to records dated on day and aggregates them.
// Returns nil when no records match, so callers can tell "no records
// today" apart from a zero-hour summary.
func Summarize(table []ActivityRecord, day time.Time) *DailySummary {
	var todays []ActivityRecord
	for _, rec := range table {
		if sameDay(rec.Date, day) {
			todays = append(todays, rec)
		}
	}
	if len(todays) == 0 {
		return nil
	}

	sum := &DailySummary{
		Date:        midnight(day),
		RecordCount: len(todays),
		TopActivity: todays[0],
	}
	for _, rec := range todays {
		sum.TotalHours += rec.Hours
		if rec.Hours > sum.TopActivity.Hours {
			sum.TopActivity = rec
		}
	}
	sum.ByActivity = groupTotals(todays, func(r ActivityRecord) string { return r.Activity })
	sum.ByCategory = groupTotals(todays, func(r ActivityRecord) string { return string(r.Category) })
	return sum
}

func groupTotals(records []ActivityRecord, key func(ActivityRecord) string) []SliceTotal {
	index := map[string]int{}
	var totals []SliceTotal
	for _, rec := range records {
		k := key(rec)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, SliceTotal{Label: k})
		}
		totals[i].Hours += rec.Hours
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Hours > totals[j].Hours })
	return totals
}

func productiveHours(sum *DailySummary) float64 {
	for _, sl := range sum.ByCategory {
		if sl.Label == string(CategoryProductive) {
			return sl.Hours
		}
	}
	return 0
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
