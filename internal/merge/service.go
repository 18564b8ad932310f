package merge

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bidmerge-dev/bidmerge/internal/category"
	"github.com/bidmerge-dev/bidmerge/internal/config"
	"github.com/bidmerge-dev/bidmerge/internal/loader"
	"github.com/bidmerge-dev/bidmerge/internal/log"
	"github.com/bidmerge-dev/bidmerge/internal/master"
	"github.com/bidmerge-dev/bidmerge/internal/model"
	"github.com/bidmerge-dev/bidmerge/internal/normalize"
	"github.com/bidmerge-dev/bidmerge/internal/runlog"
	"github.com/bidmerge-dev/bidmerge/internal/viewer"
)

// Report summarizes one merge run.
type Report struct {
	FilesProcessed    int
	FilesSkipped      int
	ItemsRead         int
	RowsDropped       int
	BeforeDedup       int
	DuplicatesRemoved int
	MasterRows        int
	Written           bool
}

// Service runs the merge pipeline: scan, classify, normalize, combine,
// dedup, write.
type Service struct {
	cfg      *config.Config
	rules    category.Rules
	registry *loader.Registry
	logger   *log.Logger
	opener   viewer.Opener
	workdir  string
}

// NewService creates a merge Service. workdir is where the run history log
// lives, normally the current directory.
func NewService(cfg *config.Config, rules category.Rules, registry *loader.Registry, logger *log.Logger, opener viewer.Opener, workdir string) *Service {
	return &Service{
		cfg:      cfg,
		rules:    rules,
		registry: registry,
		logger:   logger,
		opener:   opener,
		workdir:  workdir,
	}
}

// Run executes one merge in the given mode. Runs that find no input files or
// no usable rows end early with a warning and Written=false; they are not
// errors and never touch the master file.
func (s *Service) Run(mode Mode) (*Report, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	files, err := loader.Scan(s.cfg.InputDir, s.registry)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	if len(files) == 0 {
		s.logger.Warn("no input files found", "dir", s.cfg.InputDir)
		return report, nil
	}

	newData := s.collect(files, report)
	if len(newData) == 0 {
		s.logger.Warn("no valid data found in input files", "dir", s.cfg.InputDir)
		return report, nil
	}

	combined := newData
	if mode == ModeAppend {
		existing, err := s.loadExisting()
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.logger.Info("append mode: adding new unique items to existing master")
			combined = append(existing, newData...)
		}
	} else {
		s.logger.Info("overwrite mode: rebuilding master file from scratch")
	}

	report.BeforeDedup = len(combined)
	final, removed := Dedup(combined)
	report.DuplicatesRemoved = removed
	report.MasterRows = len(final)

	if err := master.Write(s.cfg.OutputFile, final); err != nil {
		return nil, err
	}
	report.Written = true

	s.logger.Info("merge complete",
		"files_processed", report.FilesProcessed,
		"before_dedup", report.BeforeDedup,
		"duplicates_removed", report.DuplicatesRemoved,
		"master_rows", report.MasterRows,
		"output", s.cfg.OutputFile,
	)

	s.finalize(mode, report)
	return report, nil
}

// collect classifies, loads, and normalizes each input file. Files that fail
// to load or lack required columns are skipped, not fatal.
func (s *Service) collect(files []loader.FileInfo, report *Report) []model.Item {
	var all []model.Item
	for _, f := range files {
		cat := category.Detect(f.Stem, s.rules)

		table, err := loader.Load(f, s.registry)
		if err != nil {
			s.logger.Warn("skipping unreadable file", "file", f.Name, "error", err)
			report.FilesSkipped++
			continue
		}

		items, dropped, err := normalize.File(table, f.Name, cat)
		if errors.Is(err, normalize.ErrMissingColumns) {
			s.logger.Warn("skipping file missing required columns", "file", f.Name)
			report.FilesSkipped++
			continue
		}
		if err != nil {
			s.logger.Warn("skipping file", "file", f.Name, "error", err)
			report.FilesSkipped++
			continue
		}
		if dropped > 0 {
			s.logger.Warn("dropped rows with unparseable unit cost", "file", f.Name, "rows", dropped)
			report.RowsDropped += dropped
		}

		s.logger.Info("processed file", "file", f.Name, "items", len(items), "category", cat)
		report.FilesProcessed++
		report.ItemsRead += len(items)
		all = append(all, items...)
	}
	return all
}

// loadExisting reads the current master file for append mode. A missing
// master means a first run; any other failure is fatal.
func (s *Service) loadExisting() ([]model.Item, error) {
	if _, err := os.Stat(s.cfg.OutputFile); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("checking master file: %w", err)
	}
	return master.Read(s.cfg.OutputFile)
}

// finalize handles the post-write extras. The master is already saved, so
// every failure here is logged and swallowed.
func (s *Service) finalize(mode Mode, report *Report) {
	entry := runlog.Entry{
		Timestamp:         time.Now(),
		Mode:              string(mode),
		FilesProcessed:    report.FilesProcessed,
		ItemsRead:         report.ItemsRead,
		DuplicatesRemoved: report.DuplicatesRemoved,
		MasterRows:        report.MasterRows,
		OutputFile:        s.cfg.OutputFile,
	}
	if err := runlog.Append(s.workdir, entry); err != nil {
		s.logger.Warn("could not record run in merge log", "error", err)
	}

	if !s.cfg.OpenAfterMerge {
		return
	}
	if err := s.opener.Open(s.cfg.OutputFile); err != nil {
		s.logger.Warn("could not open master file", "file", s.cfg.OutputFile, "error", err)
	} else {
		s.logger.Info("opened master file", "file", s.cfg.OutputFile)
	}
}
