package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/index"
	"github.com/sourcehire/candidex/storage"
)

// snapshotMagic identifies a candidex index snapshot file.
var snapshotMagic = []byte("CDXI")

var (
	// ErrCandidateRepositoryRequired is returned when a candidate repository is not provided.
	ErrCandidateRepositoryRequired = errors.New("candidate repository required")

	// ErrIndexRequired is returned when a vector index is not provided.
	ErrIndexRequired = errors.New("vector index required")

	// ErrSnapshotPathRequired is returned when a snapshot path is not provided.
	ErrSnapshotPathRequired = errors.New("snapshot path required")
)

// Manager owns the durability of the in-memory vector index: writing
// snapshots, restoring them at startup, and checking the index against
// the record store.
type Manager struct {
	repository   storage.CandidateRepository
	idx          *index.Index
	snapshotPath string
	logger       *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewManager creates a new lifecycle manager.
func NewManager(
	repository storage.CandidateRepository,
	idx *index.Index,
	snapshotPath string,
	opts ...Option,
) (*Manager, error) {
	if repository == nil {
		return nil, ErrCandidateRepositoryRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if snapshotPath == "" {
		return nil, ErrSnapshotPathRequired
	}

	m := &Manager{
		repository:   repository,
		idx:          idx,
		snapshotPath: snapshotPath,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Persist writes the current index contents to the snapshot file.
// The snapshot is written to a temp file and renamed into place, so a
// crash mid-write never leaves a truncated snapshot behind.
func (m *Manager) Persist(ctx context.Context) error {
	snapshot := &core.IndexSnapshot{
		Version:   core.SnapshotFormatVersion,
		Dimension: m.idx.Dimension(),
		Entries:   m.idx.Entries(),
	}

	if err := os.MkdirAll(filepath.Dir(m.snapshotPath), 0755); err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.snapshotPath), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	_, err = tmp.Write(snapshotMagic)
	if err == nil {
		_, err = tmp.Write(storage.MarshalIndexSnapshot(snapshot))
	}
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	if err := os.Rename(tmpName, m.snapshotPath); err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	m.logger.Info("index snapshot persisted",
		"path", m.snapshotPath, "vectors", len(snapshot.Entries))
	return nil
}

// Load restores the index from the snapshot file. The snapshot is fully
// decoded and validated before the index is touched, so a corrupt or
// incompatible file leaves the current index state intact. A missing
// snapshot file is not an error; the index is simply left empty.
func (m *Manager) Load(ctx context.Context) error {
	data, err := os.ReadFile(m.snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Info("no index snapshot found", "path", m.snapshotPath)
			return nil
		}
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	if len(data) < len(snapshotMagic) || !bytes.Equal(data[:len(snapshotMagic)], snapshotMagic) {
		return fmt.Errorf("%w: %s is not an index snapshot", core.ErrPersistence, m.snapshotPath)
	}

	snapshot, err := storage.UnmarshalIndexSnapshot(data[len(snapshotMagic):])
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	if snapshot.Version != core.SnapshotFormatVersion {
		return fmt.Errorf("%w: snapshot has version %d, this build expects %d",
			core.ErrSnapshotVersion, snapshot.Version, core.SnapshotFormatVersion)
	}

	if err := m.idx.Replace(snapshot.Entries); err != nil {
		return fmt.Errorf("%w: %w", core.ErrPersistence, err)
	}

	m.logger.Info("index snapshot loaded",
		"path", m.snapshotPath, "vectors", len(snapshot.Entries))
	return nil
}

// Verify compares the index contents against the record store and
// reports any orphans on either side. Verify never mutates anything;
// repairing is a separate, deliberate operation.
func (m *Manager) Verify(ctx context.Context) (*core.VerificationReport, error) {
	indexIDs := m.idx.IDs()
	storeIDs, err := m.repository.AllIDs(ctx)
	if err != nil {
		return nil, err
	}

	indexed := make(map[core.ID]bool, len(indexIDs))
	for _, id := range indexIDs {
		indexed[id] = true
	}
	stored := make(map[core.ID]bool, len(storeIDs))
	for _, id := range storeIDs {
		stored[id] = true
	}

	report := &core.VerificationReport{
		VectorCount: len(indexIDs),
		RecordCount: len(storeIDs),
	}
	for _, id := range indexIDs {
		if !stored[id] {
			report.OrphanedVectors = append(report.OrphanedVectors, id)
		}
	}
	for _, id := range storeIDs {
		if !indexed[id] {
			report.OrphanedRecords = append(report.OrphanedRecords, id)
		}
	}

	return report, nil
}
