// Package history records every randranges invocation so a data set can be
// traced back to the seed and parameters that produced it.
package history

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/mod/semver"

	"pkg.jsn.cam/randranges/pkg/ranges"
	"pkg.jsn.cam/randranges/pkg/storage"
)

// FormatVersion is written into every Run. Records with a different major
// version are refused.
const FormatVersion = "v1.0.0"

const runsBucket = "runs"

var (
	ErrRunNotFound         = errors.New("run not found")
	ErrIncompatibleVersion = errors.New("incompatible version")
)

// Run describes one generated data set.
type Run struct {
	ID            string         `json:"id"`
	FormatVersion string         `json:"format_version"`
	Seed          uint64         `json:"seed"`
	Config        ranges.Config  `json:"config"`
	CheckMode     string         `json:"check_mode"`
	Ranges        []ranges.Range `json:"ranges"`
	CSVFile       string         `json:"csv_file"`
	IPsFile       string         `json:"ips_file"`
	// TotalAddresses is the number of addresses actually written.
	TotalAddresses int64         `json:"total_addresses"`
	CreatedAt      time.Time     `json:"created_at"`
	Duration       time.Duration `json:"duration"`
}

// Store reads and writes runs on top of a storage.Backend.
type Store struct {
	backend storage.Backend
}

// Open opens the history at path; an empty path gives an in-memory store.
func Open(path string) (*Store, error) {
	backend, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	return New(backend)
}

// New wraps an existing backend.
func New(backend storage.Backend) (*Store, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("create %s bucket: %w", runsBucket, err)
	}
	return &Store{backend: backend}, nil
}

// Save stores run, filling in FormatVersion if it is empty.
func (s *Store) Save(run *Run) error {
	if run.ID == "" {
		return errors.New("run has no ID")
	}
	if run.FormatVersion == "" {
		run.FormatVersion = FormatVersion
	}
	return storage.PutJSON(s.backend, runsBucket, run.ID, run)
}

// Get loads a run by ID.
func (s *Store) Get(id string) (*Run, error) {
	var run Run
	ok, err := storage.GetJSON(s.backend, runsBucket, id, &run)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err := checkVersion(&run); err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns all runs, newest first. Runs written by an incompatible
// version are skipped.
func (s *Store) List() ([]*Run, error) {
	var runs []*Run
	err := s.backend.ForEach(runsBucket, func(_ string, value []byte) error {
		var run Run
		if err := storage.DecodeJSON(value, &run); err != nil {
			return err
		}
		if checkVersion(&run) != nil {
			return nil
		}
		runs = append(runs, &run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(runs, func(a, b *Run) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return runs, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// IsCompatibleVersion reports whether a record written as version can be
// read by this build. Only the major version has to match.
func IsCompatibleVersion(version string) (bool, error) {
	if !semver.IsValid(version) {
		return false, fmt.Errorf("invalid version: %s", version)
	}
	return semver.Major(version) == semver.Major(FormatVersion), nil
}

func checkVersion(run *Run) error {
	ok, err := IsCompatibleVersion(run.FormatVersion)
	if err != nil {
		return fmt.Errorf("run %s: %w", run.ID, err)
	}
	if !ok {
		return fmt.Errorf("%w: run %s was written as %s, need %s.x.x",
			ErrIncompatibleVersion, run.ID, run.FormatVersion, semver.Major(FormatVersion))
	}
	return nil
}
