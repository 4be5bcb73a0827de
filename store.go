package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

var csvHeader = []string{"Date", "Start_Time", "End_Time", "Activity", "Category", "Duration", "Hours"}

// Store persists the activity table as a CSV file. The full table is
// rewritten on every persist; there is exactly one writer.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted table. A missing file yields an empty table and
// no error. An unreadable or corrupt file yields an empty table plus the
// error so the caller can report it and keep going. Files written before
// the Hours column existed get Hours recomputed from Duration.
func (s *Store) Load() ([]ActivityRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []ActivityRecord{}, nil
		}
		return []ActivityRecord{}, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	header, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []ActivityRecord{}, nil
		}
		return []ActivityRecord{}, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range csvHeader[:6] {
		if _, ok := col[name]; !ok {
			return []ActivityRecord{}, fmt.Errorf("missing column %q", name)
		}
	}
	_, hasHours := col["Hours"]

	records := []ActivityRecord{}
	for line := 2; ; line++ {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return []ActivityRecord{}, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := parseRow(row, col, hasHours)
		if err != nil {
			return []ActivityRecord{}, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, col map[string]int, hasHours bool) (ActivityRecord, error) {
	field := func(name string) string { return row[col[name]] }

	date, err := parseDate(field("Date"))
	if err != nil {
		return ActivityRecord{}, fmt.Errorf("Date: %w", err)
	}
	start, err := time.ParseInLocation(datetimeLayout, field("Start_Time"), time.Local)
	if err != nil {
		return ActivityRecord{}, fmt.Errorf("Start_Time: %w", err)
	}
	end, err := time.ParseInLocation(datetimeLayout, field("End_Time"), time.Local)
	if err != nil {
		return ActivityRecord{}, fmt.Errorf("End_Time: %w", err)
	}
	duration, err := time.ParseDuration(field("Duration"))
	if err != nil {
		return ActivityRecord{}, fmt.Errorf("Duration: %w", err)
	}
	category, err := ParseCategory(field("Category"))
	if err != nil {
		return ActivityRecord{}, err
	}

	rec := ActivityRecord{
		Date:     date,
		Start:    start,
		End:      end,
		Activity: field("Activity"),
		Category: category,
		Duration: duration,
	}
	if hasHours {
		rec.Hours, err = strconv.ParseFloat(field("Hours"), 64)
		if err != nil {
			return ActivityRecord{}, fmt.Errorf("Hours: %w", err)
		}
	} else {
		rec.Hours = duration.Seconds() / 3600
	}
	return rec, nil
}

// Older files store Date as a bare date, but a datetime sneaks in when the
// file has been touched by other tools. Accept both.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(datetimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return midnight(t), nil
}

// Persist writes the full table, replacing prior contents. Writes go to a
// temp file first so a failed write never clobbers the existing data.
func (s *Store) Persist(records []ActivityRecord) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Date.Format(dateLayout),
			rec.Start.Format(datetimeLayout),
			rec.End.Format(datetimeLayout),
			rec.Activity,
			string(rec.Category),
			rec.Duration.String(),
			strconv.FormatFloat(rec.Hours, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
