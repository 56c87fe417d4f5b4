package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// WorkbookStore implements SheetStore over a local .xlsx workbook, which is
// the system of record for the whole dashboard. A single open handle is kept
// behind a mutex; technicians also edit the workbook by hand, so an fsnotify
// watcher drops the handle whenever the file changes on disk and the next
// read re-opens it.
type WorkbookStore struct {
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	file    *excelize.File
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewWorkbookStore(path string, logger *zap.Logger) (*WorkbookStore, error) {
	s := &WorkbookStore{
		path:   path,
		logger: logger,
		done:   make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create workbook watcher: %w", err)
	}
	// Watch the directory, not the file: spreadsheet editors save atomically
	// via rename, which replaces the watched inode.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("could not watch workbook directory: %w", err)
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

func (s *WorkbookStore) watch() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.mu.Lock()
			if s.file != nil {
				s.file.Close()
				s.file = nil
			}
			s.mu.Unlock()
			s.logger.Debug("workbook changed on disk, handle dropped", zap.String("path", s.path))
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("workbook watcher error", zap.Error(err))
		}
	}
}

func (s *WorkbookStore) Close() error {
	close(s.done)
	if err := s.watcher.Close(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// open returns the live handle, reopening the workbook if needed. Caller
// holds s.mu.
func (s *WorkbookStore) open() (*excelize.File, error) {
	if s.file != nil {
		return s.file, nil
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %s: %w", s.path, err)
	}
	s.file = f
	return f, nil
}

// openOrCreate is open, but bootstraps a fresh workbook on first write.
func (s *WorkbookStore) openOrCreate() (*excelize.File, error) {
	if s.file != nil {
		return s.file, nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return nil, fmt.Errorf("could not create workbook directory: %w", err)
		}
		f := excelize.NewFile()
		if err := f.SaveAs(s.path); err != nil {
			return nil, fmt.Errorf("could not create workbook %s: %w", s.path, err)
		}
		s.file = f
		s.logger.Info("created new workbook", zap.String("path", s.path))
		return f, nil
	}
	return s.open()
}

// ReadRows returns every data row of a worksheet keyed by its header row.
// A worksheet that does not exist yet reads as empty, not as an error.
func (s *WorkbookStore) ReadRows(ctx context.Context, table string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return nil, err
	}

	idx, err := f.GetSheetIndex(table)
	if err != nil {
		return nil, fmt.Errorf("could not look up worksheet %s: %w", table, err)
	}
	if idx == -1 {
		return []Row{}, nil
	}

	rows, err := f.GetRows(table)
	if err != nil {
		return nil, fmt.Errorf("could not read worksheet %s: %w", table, err)
	}
	if len(rows) == 0 {
		return []Row{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(raw) {
				row[key] = raw[i]
			} else {
				row[key] = ""
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// AppendRow adds one record at the bottom of a worksheet, creating the sheet
// together with its header row when it does not exist yet.
func (s *WorkbookStore) AppendRow(ctx context.Context, table string, values []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.openOrCreate()
	if err != nil {
		return err
	}

	next, err := s.ensureSheet(f, table)
	if err != nil {
		return err
	}

	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, next)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(table, cell, v); err != nil {
			return fmt.Errorf("could not write cell %s!%s: %w", table, cell, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("could not save workbook: %w", err)
	}
	return nil
}

// ensureSheet makes sure the worksheet exists with its header row and returns
// the 1-based excel row number where the next record goes.
func (s *WorkbookStore) ensureSheet(f *excelize.File, table string) (int, error) {
	idx, err := f.GetSheetIndex(table)
	if err != nil {
		return 0, err
	}
	if idx == -1 {
		if _, err := f.NewSheet(table); err != nil {
			return 0, fmt.Errorf("could not create worksheet %s: %w", table, err)
		}
		header, ok := SheetHeaders[table]
		if !ok {
			return 0, fmt.Errorf("no header defined for worksheet %s", table)
		}
		for i, h := range header {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(table, cell, h); err != nil {
				return 0, err
			}
		}
		s.logger.Info("created worksheet", zap.String("sheet", table))
		return 2, nil
	}

	rows, err := f.GetRows(table)
	if err != nil {
		return 0, err
	}
	return len(rows) + 1, nil
}

// UpdateCell overwrites one cell addressed by 1-based data-row and column
// indexes (the header row is not addressable).
func (s *WorkbookStore) UpdateCell(ctx context.Context, table string, rowIndex, colIndex int, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rowIndex < 1 || colIndex < 1 {
		return fmt.Errorf("cell position out of range: row %d col %d", rowIndex, colIndex)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(colIndex, rowIndex+1)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(table, cell, value); err != nil {
		return fmt.Errorf("could not update cell %s!%s: %w", table, cell, err)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("could not save workbook: %w", err)
	}
	return nil
}
