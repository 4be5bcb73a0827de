package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	fileFlag := flag.String("file", "", "path to CSV store (overrides TIMELOG_FILE)")
	reportFlag := flag.Bool("report", false, "print today's report and exit")
	dashboardFlag := flag.Bool("dashboard", false, "show live dashboard")
	flag.Parse()

	if *fileFlag != "" {
		cfg.File = *fileFlag
	}
	if dir := filepath.Dir(cfg.File); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil && !os.IsExist(err) {
			log.Fatal("mkdir", "dir", dir, "err", err)
		}
	}

	store := NewStore(cfg.File)
	table, err := store.Load()
	if err != nil {
		log.Warn("could not read existing records, starting fresh", "file", cfg.File, "err", err)
	}

	switch {
	case *reportFlag:
		printReport(table, time.Now(), cfg.DailyGoalHours)
	case *dashboardFlag:
		m := dashboardModel{
			store: store,
			table: table,
			goal:  cfg.DailyGoalHours,
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal("dashboard", "err", err)
		}
	default:
		runMenu(os.Stdin, table, NewRecorder(store), cfg.DailyGoalHours)
	}
}
