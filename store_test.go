package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "time_log.csv")
	return NewStore(path), path
}

func sampleRecords() []ActivityRecord {
	day := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)
	start1 := day.Add(9 * time.Hour)
	start2 := day.Add(23*time.Hour + 30*time.Minute)
	return []ActivityRecord{
		{
			Date:     day,
			Start:    start1,
			End:      start1.Add(90 * time.Minute),
			Activity: "Study",
			Category: CategoryProductive,
			Duration: 90 * time.Minute,
			Hours:    1.5,
		},
		{
			Date:     day,
			Start:    start2,
			End:      start2.Add(45 * time.Minute),
			Activity: "Scrolling",
			Category: CategoryUnproductive,
			Duration: 45 * time.Minute,
			Hours:    0.75,
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	store, _ := testStore(t)

	table, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, table)
	require.Empty(t, table)
}

func TestPersistRoundTrip(t *testing.T) {
	store, _ := testStore(t)
	records := sampleRecords()

	require.NoError(t, store.Persist(records))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i, want := range records {
		require.Equal(t, want.Activity, got[i].Activity)
		require.Equal(t, want.Category, got[i].Category)
		require.Equal(t, want.Duration, got[i].Duration)
		require.InDelta(t, want.Hours, got[i].Hours, 1e-9)
		require.True(t, want.Date.Equal(got[i].Date))
		require.True(t, want.Start.Equal(got[i].Start))
		require.True(t, want.End.Equal(got[i].End))
	}
}

func TestPersistOverwrites(t *testing.T) {
	store, _ := testStore(t)

	require.NoError(t, store.Persist(sampleRecords()))
	require.NoError(t, store.Persist(sampleRecords()[:1]))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Study", got[0].Activity)
}

func TestLoadBackfillsMissingHoursColumn(t *testing.T) {
	store, path := testStore(t)

	legacy := "Date,Start_Time,End_Time,Activity,Category,Duration\n" +
		"2026-09-01,2026-09-01 09:00:00,2026-09-01 10:30:00,Study,Productive,1h30m0s\n" +
		"2026-09-01,2026-09-01 23:30:00,2026-09-02 00:15:00,Scrolling,Unproductive,45m0s\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, rec := range got {
		require.InDelta(t, rec.Duration.Seconds()/3600, rec.Hours, 1e-9)
	}
	require.InDelta(t, 1.5, got[0].Hours, 1e-9)
	require.InDelta(t, 0.75, got[1].Hours, 1e-9)
}

func TestLoadAcceptsDatetimeDateColumn(t *testing.T) {
	store, path := testStore(t)

	data := "Date,Start_Time,End_Time,Activity,Category,Duration,Hours\n" +
		"2026-09-01 00:00:00,2026-09-01 09:00:00,2026-09-01 10:00:00,Study,Productive,1h0m0s,1\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Date.Equal(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)))
}

func TestLoadCorruptFileFallsBackToEmptyTable(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "wrong header", data: "what,is,this\n1,2,3\n"},
		{name: "bad duration", data: "Date,Start_Time,End_Time,Activity,Category,Duration,Hours\n" +
			"2026-09-01,2026-09-01 09:00:00,2026-09-01 10:00:00,Study,Productive,ninety minutes,1.5\n"},
		{name: "bad category", data: "Date,Start_Time,End_Time,Activity,Category,Duration,Hours\n" +
			"2026-09-01,2026-09-01 09:00:00,2026-09-01 10:00:00,Study,Restful,1h0m0s,1\n"},
		{name: "ragged row", data: "Date,Start_Time,End_Time,Activity,Category,Duration,Hours\n" +
			"2026-09-01,Study\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, path := testStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tc.data), 0644))

			got, err := store.Load()
			require.Error(t, err)
			require.NotNil(t, got)
			require.Empty(t, got)
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	got, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPersistRoundTripAfterBackfill(t *testing.T) {
	store, path := testStore(t)

	legacy := "Date,Start_Time,End_Time,Activity,Category,Duration\n" +
		"2026-09-01,2026-09-01 09:00:00,2026-09-01 10:30:00,Study,Productive,1h30m0s\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Persist(loaded))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.InDelta(t, 1.5, got[0].Hours, 1e-9)
}
