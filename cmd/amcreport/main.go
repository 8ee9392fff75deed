// Command amcreport builds composite AMC service reports from a document
// database on the command line, mirroring what the ERP's report endpoint
// does in-process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/compose"
	"github.com/voltserv/reportengine/docstore"
	"github.com/voltserv/reportengine/export"
	"github.com/voltserv/reportengine/subreport"
	"github.com/voltserv/reportengine/theme"
)

func main() {
	dbPath := flag.String("db", "reports.db", "SQLite document database path")
	amcID := flag.String("amc", "", "AMC document id to build (required)")
	outPath := flag.String("o", "", "Output PDF path (default: AMC_Report_<amc_no>.pdf)")
	uploadsDir := flag.String("uploads", compose.DefaultUploadsDir(), "Directory holding statutory upload files (default honors UPLOADS_DIR)")
	defaultsPath := flag.String("defaults", "", "Theme defaults YAML, seeded when the db has no settings")
	xlsx := flag.Bool("xlsx", false, "Also write the contract workbook next to the PDF")
	schedule := flag.Bool("schedule", false, "Also write the maintenance schedule PDF")
	completion := flag.Bool("completion", false, "Also write the work completion PDF")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if *amcID == "" {
		fmt.Fprintln(os.Stderr, "amcreport: -amc is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(log, *dbPath, *amcID, *outPath, *uploadsDir, *defaultsPath, *xlsx, *schedule, *completion); err != nil {
		log.Error("build failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, dbPath, amcID, outPath, uploadsDir, defaultsPath string, xlsx, schedule, completion bool) error {
	store, err := docstore.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if defaultsPath != "" {
		if err := seedDefaults(ctx, store, defaultsPath); err != nil {
			return err
		}
	}

	c := compose.New(store,
		compose.WithUploadsDir(uploadsDir),
		compose.WithLogger(log))

	start := time.Now()
	pdf, err := c.BuildAMCReport(ctx, amcID)
	if err != nil {
		return err
	}

	amc, err := store.AMC(ctx, amcID)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = compose.FileName(amc.AMCNo.String())
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	log.Info("report written", "path", outPath, "bytes", len(pdf), "took", time.Since(start))

	if xlsx {
		path := sibling(outPath, ".xlsx")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		err = export.AMCWorkbook(f, amc)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		log.Info("workbook written", "path", path)
	}

	if schedule || completion {
		settings, err := store.Settings(ctx)
		if err != nil {
			return err
		}
		th := theme.FromSettings(settings)
		engines := subreport.NewEngines(store, th, log)
		project := loadProject(ctx, store, amc, log)

		if schedule {
			out, err := engines.ProjectSchedule(amc, project)
			if err != nil {
				return err
			}
			path := sibling(outPath, "_schedule.pdf")
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			log.Info("schedule written", "path", path)
		}
		if completion {
			out, err := engines.WorkCompletion(amc, project)
			if err != nil {
				return err
			}
			path := sibling(outPath, "_completion.pdf")
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			log.Info("work completion written", "path", path)
		}
	}
	return nil
}

// seedDefaults loads the theme defaults file into the settings document
// unless one already exists.
func seedDefaults(ctx context.Context, store *docstore.SQLite, path string) error {
	existing, err := store.Settings(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	doc, err := theme.LoadDefaults(path)
	if err != nil {
		return err
	}
	return store.Put(ctx, docstore.CollectionSettings, docstore.SettingsDocID, doc)
}

func loadProject(ctx context.Context, store *docstore.SQLite, amc *reportengine.AMC, log *slog.Logger) *reportengine.Project {
	pid := amc.ProjectID.String()
	if pid == "" {
		return nil
	}
	project, err := store.Project(ctx, pid)
	if err != nil {
		log.Warn("project not found", "project", pid)
		return nil
	}
	return project
}

// sibling swaps the extension of outPath for suffix.
func sibling(outPath, suffix string) string {
	base := strings.TrimSuffix(outPath, filepath.Ext(outPath))
	return base + suffix
}
