package badger

import (
	"context"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/storage"
)

// CandidateRepository implements storage.CandidateRepository for BadgerDB.
type CandidateRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.CandidateRepository = (*CandidateRepository)(nil)

// NewCandidateRepository creates a new CandidateRepository.
func NewCandidateRepository(backend *Backend) (*CandidateRepository, error) {
	idSeq, err := backend.GetSequence(candidateIDSeq)
	if err != nil {
		return nil, err
	}

	return &CandidateRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *CandidateRepository) Close() error {
	return r.idSeq.Release()
}

// PutCandidate stores a candidate record, fully replacing any prior
// record under the same ID. Records with ID=0 get a fresh sequence ID.
func (r *CandidateRepository) PutCandidate(ctx context.Context, record *core.CandidateRecord) (*core.CandidateRecord, error) {
	if err := core.ValidateCandidateRecord(record); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()

		if record.Id == 0 {
			nextID, err := r.nextSequenceID()
			if err != nil {
				return err
			}
			record.Id = nextID
			record.InsertedAt = now
		} else {
			old, err := r.readCandidate(tx, makeCandidateKey(record.Id))
			if err != nil {
				return err
			}
			if old == nil {
				record.InsertedAt = now
			} else {
				record.InsertedAt = old.InsertedAt

				// Drop the stale fingerprint entry if the embedding text changed
				oldFp := core.FingerprintFromContent(old.EmbeddingText)
				if oldFp != core.FingerprintFromContent(record.EmbeddingText) {
					if err := tx.Delete(makeFingerprintKey(oldFp)); err != nil {
						return err
					}
				}
			}
		}
		record.UpdatedAt = now

		key := makeCandidateKey(record.Id)
		if err := tx.Set(key, storage.MarshalCandidateRecord(record)); err != nil {
			return err
		}

		fp := core.FingerprintFromContent(record.EmbeddingText)
		if err := tx.Set(makeFingerprintKey(fp), storage.MarshalID(record.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return record, err
}

// GetCandidate retrieves a single candidate record by ID.
func (r *CandidateRepository) GetCandidate(ctx context.Context, id core.ID) (*core.CandidateRecord, error) {
	var result *core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readCandidate(tx, makeCandidateKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetCandidates retrieves multiple candidate records by their IDs.
// Missing records are skipped without error.
func (r *CandidateRepository) GetCandidates(ctx context.Context, ids ...core.ID) ([]*core.CandidateRecord, error) {
	var result []*core.CandidateRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := r.readCandidate(tx, makeCandidateKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// DeleteCandidate removes a candidate record and its fingerprint entry.
func (r *CandidateRepository) DeleteCandidate(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCandidateKey(id)

		record, err := r.readCandidate(tx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return storage.ErrNotFound
		}

		fp := core.FingerprintFromContent(record.EmbeddingText)
		if err := tx.Delete(makeFingerprintKey(fp)); err != nil {
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteAll removes every candidate record and fingerprint entry.
// The ID sequence is left alone so deleted IDs are never reused.
func (r *CandidateRepository) DeleteAll(ctx context.Context) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, prefix := range []string{candidateRecordPrefix + ":", candidateFpPrefix + ":"} {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(prefix)
			opts.PrefetchValues = false

			iter := tx.NewIterator(opts)
			var keys [][]byte
			for iter.Rewind(); iter.Valid(); iter.Next() {
				keys = append(keys, iter.Item().KeyCopy(nil))
			}
			iter.Close()

			for _, key := range keys {
				if err := tx.Delete(key); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// AllIDs returns the IDs of all stored candidates in ascending order.
// Candidate keys sort lexicographically, not numerically, so the IDs are
// collected first and sorted after.
func (r *CandidateRepository) AllIDs(ctx context.Context) ([]core.ID, error) {
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(candidateRecordPrefix + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			id, err := strconv.ParseUint(string(key[len(prefix):]), 10, 64)
			if err != nil {
				return err
			}
			ids = append(ids, core.ID(id))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	sortIDs(ids)
	return ids, nil
}

// Count returns the number of stored candidate records.
func (r *CandidateRepository) Count(ctx context.Context) (int, error) {
	ids, err := r.AllIDs(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// FindByFingerprint returns the ID of the candidate whose embedding text
// hashes to the given fingerprint.
func (r *CandidateRepository) FindByFingerprint(ctx context.Context, fp core.Fingerprint) (core.ID, error) {
	var id core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFingerprintKey(fp))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			id, unmarshalErr = storage.UnmarshalID(val)
			return unmarshalErr
		})
	}, false)
	return id, err
}

// NextID reserves a fresh candidate ID from the sequence.
func (r *CandidateRepository) NextID(ctx context.Context) (core.ID, error) {
	return r.nextSequenceID()
}

// nextSequenceID draws the next ID from the BadgerDB sequence.
// BadgerDB sequences can return 0 on first call, so we skip it.
func (r *CandidateRepository) nextSequenceID() (core.ID, error) {
	nextID, err := r.idSeq.Next()
	if err != nil {
		return 0, err
	}
	if nextID == 0 {
		nextID, err = r.idSeq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(nextID), nil
}

// readCandidate reads a candidate record from the transaction.
// Returns nil, nil when the key is absent.
func (r *CandidateRepository) readCandidate(tx *badger.Txn, key []byte) (*core.CandidateRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.CandidateRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalCandidateRecord(val)
		return unmarshalErr
	})
	return record, err
}

func sortIDs(ids []core.ID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
