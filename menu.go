package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const reportChartWidth = 64

// runMenu drives the interactive loop until the user exits (or input
// runs out). Returns the final table so callers see every append.
func runMenu(in io.Reader, table []ActivityRecord, recorder *Recorder, goalHours float64) []ActivityRecord {
	rd := bufio.NewReader(in)

	fmt.Println("==============================")
	fmt.Println("  DAILY REFLECTION")
	fmt.Println("==============================")

	for {
		fmt.Println("\n--- Menu ---")
		fmt.Println("1. Add activity")
		fmt.Println("2. Today's report")
		fmt.Println("3. Exit")

		choice, ok := prompt(rd, "Choice: ")
		if !ok {
			return table
		}

		switch choice {
		case "1":
			next, ok := addActivity(rd, table, recorder)
			if !ok {
				return table
			}
			table = next
		case "2":
			printReport(table, time.Now(), goalHours)
		case "3":
			fmt.Println("Good work today. See you tomorrow!")
			return table
		default:
			fmt.Println("Pick 1, 2 or 3.")
		}
	}
}

func addActivity(rd *bufio.Reader, table []ActivityRecord, recorder *Recorder) ([]ActivityRecord, bool) {
	activity, ok := prompt(rd, "Activity: ")
	if !ok {
		return table, false
	}

	var category Category
	for {
		raw, ok := prompt(rd, "Category (Productive/Unproductive): ")
		if !ok {
			return table, false
		}
		c, err := ParseCategory(raw)
		if err != nil {
			fmt.Println("Only 'Productive' or 'Unproductive' are accepted.")
			continue
		}
		category = c
		break
	}

	start, ok := prompt(rd, "Start time (HH:MM): ")
	if !ok {
		return table, false
	}
	end, ok := prompt(rd, "End time (HH:MM): ")
	if !ok {
		return table, false
	}

	next, hours, err := recorder.Record(table, activity, category, start, end)
	switch {
	case errors.Is(err, ErrTimeFormat):
		fmt.Println("Time format error: enter times as HH:MM (24-hour).")
		return table, true
	case errors.Is(err, ErrZeroDuration):
		fmt.Println("Start and end times are equal; a zero-hour activity cannot be recorded.")
		return table, true
	case err != nil:
		log.Error("could not record activity", "err", err)
		return table, true
	}
	fmt.Printf("Saved '%s' (%.2f hours).\n", activity, hours)
	return next, true
}

func printReport(table []ActivityRecord, day time.Time, goalHours float64) {
	sum := Summarize(table, day)
	if sum == nil {
		fmt.Println("No activities recorded today.")
		return
	}

	fmt.Println(day.Format("Daily report : Jan 2, 2006 , Monday"))
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Total time       : %.1f hours\n", sum.TotalHours)
	fmt.Printf("Activities       : %d\n", sum.RecordCount)
	fmt.Printf("Longest activity : %s (%.1fh)\n", sum.TopActivity.Activity, sum.TopActivity.Hours)
	if goalHours > 0 {
		fmt.Printf("Productive goal  : %s\n", formatGoalProgress(productiveHours(sum), goalHours))
	}
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println(renderActivityChart(sum.ByActivity, reportChartWidth))
	fmt.Println(renderCategoryChart(sum.ByCategory, reportChartWidth))
}

func prompt(rd *bufio.Reader, label string) (string, bool) {
	fmt.Print(label)
	s, err := rd.ReadString('\n')
	if err != nil && s == "" {
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(s), true
}
