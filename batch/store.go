package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const metadataFile = "metadata.json"

// RunMetadata describes a stored batch run.
type RunMetadata struct {
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
	Images    int       `json:"images"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
}

// Store persists batch results as JSON files under a base directory.
// Each run gets its own subdirectory holding one numbered file per image
// plus a metadata file.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir, creating it if needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// RunDir returns the directory for a named run, creating it if needed.
func (s *Store) RunDir(run string) (string, error) {
	dir := filepath.Join(s.baseDir, run)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating run directory: %w", err)
	}
	return dir, nil
}

// SaveResult writes one result as <index>.json within the run directory.
func (s *Store) SaveResult(run string, index int, result *Result) error {
	dir, err := s.RunDir(run)
	if err != nil {
		return err
	}
	data, err := sonic.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result %d: %w", index, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%03d.json", index))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result %d: %w", index, err)
	}
	return nil
}

// SaveMetadata writes the run's metadata file.
func (s *Store) SaveMetadata(run string, meta *RunMetadata) error {
	dir, err := s.RunDir(run)
	if err != nil {
		return err
	}
	data, err := sonic.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, metadataFile), data, 0o644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}

// LoadRun reads a run's metadata and all of its results, in index order.
func (s *Store) LoadRun(run string) (*RunMetadata, []*Result, error) {
	dir := filepath.Join(s.baseDir, run)
	metaData, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, nil, fmt.Errorf("reading metadata: %w", err)
	}
	var meta RunMetadata
	if err := sonic.Unmarshal(metaData, &meta); err != nil {
		return nil, nil, fmt.Errorf("parsing metadata: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading run directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name() == metadataFile || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	results := make([]*Result, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var res Result
		if err := sonic.Unmarshal(data, &res); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		results = append(results, &res)
	}
	return &meta, results, nil
}

// ListRuns returns the names of all stored runs, sorted.
func (s *Store) ListRuns() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("reading store directory: %w", err)
	}
	var runs []string
	for _, e := range entries {
		if e.IsDir() {
			runs = append(runs, e.Name())
		}
	}
	sort.Strings(runs)
	return runs, nil
}
