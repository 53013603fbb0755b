package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SUMMERxKx/Timeline/internal/config"
	"github.com/SUMMERxKx/Timeline/internal/logger"
	"github.com/SUMMERxKx/Timeline/internal/notes"
	"github.com/SUMMERxKx/Timeline/internal/timeline"
	"github.com/SUMMERxKx/Timeline/internal/tui"
)

var log = logger.Named("cli")

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(logger.DefaultLogPath); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "export":
			exportMain(root, rest[1:])
			return
		case "note":
			noteMain(root, rest[1:])
			return
		}
	}

	runInteractive(root)
}

func runInteractive(root rootArgs) {
	p, err := loadPlan(root)
	if err != nil {
		log.Fatalf("%v", err)
	}

	planID, err := p.Store.PlanID()
	if err != nil {
		log.Warnf("failed to read plan id: %v", err)
	}

	tuiLog := logger.Named("tui")
	if entry, closer, _, err := logger.SetupComponentFile("tui", "logs/timeline-tui.log"); err != nil {
		log.Warnf("failed to initialize tui log: %v", err)
	} else {
		tuiLog = entry
		if closer != nil {
			defer closer.Close()
		}
	}

	err = tui.Run(tui.Options{
		Slots:  p.Slots,
		Notes:  p.Store,
		PlanID: planID,
		Log:    tuiLog,
	})
	if err != nil {
		log.Fatalf("program exit: %v", err)
	}
	printExitSummary(p)
}

// plan bundles everything the subcommands need: the resolved range, the
// generated sequence and the note store.
type plan struct {
	Config config.Config
	Slots  []timeline.Slot
	Store  *notes.Store
}

// loadPlan resolves config, env and -c overrides into a validated plan. This
// is the validation boundary: the sequence generator itself assumes a sane
// range.
func loadPlan(root rootArgs) (plan, error) {
	cfg, err := config.Load(root.cfgPath)
	if err != nil {
		return plan{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg = config.ApplyKVOverrides(cfg, root.overrides)

	startTerm, err := timeline.ParseTerm(cfg.StartTerm)
	if err != nil {
		return plan{}, err
	}
	startYear := cfg.StartYear
	if startYear == 0 {
		startYear = time.Now().Year()
	}
	gradYear := cfg.GradYear
	if gradYear == 0 {
		gradYear = startYear + 3
	}
	if gradYear < startYear {
		return plan{}, fmt.Errorf("graduation year %d is before start year %d", gradYear, startYear)
	}

	store := &notes.Store{Path: cfg.NotesPath}
	if cfg.NotesPath == "" {
		store, err = notes.NewDefault()
		if err != nil {
			return plan{}, fmt.Errorf("failed to resolve notes path: %w", err)
		}
	}

	return plan{
		Config: cfg,
		Slots:  timeline.Generate(startTerm, startYear, gradYear),
		Store:  store,
	}, nil
}

func printExitSummary(p plan) {
	keys, err := p.Store.Keys()
	if err != nil {
		return
	}
	fmt.Printf("Plan: %d terms, %d notes. Run timeline export to print it.\n", len(p.Slots), len(keys))
}
