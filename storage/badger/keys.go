package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/sourcehire/candidex/core"
)

// Key prefixes for different data types
const (
	candidateRecordPrefix = "canrec"
	candidateFpPrefix     = "canfp"
	candidateIDSeq        = "canrecseq"
	schemaVersionKey      = "schemaver"
)

// makeCandidateKey generates a key for a candidate record by ID.
func makeCandidateKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", candidateRecordPrefix, id))
}

// makeFingerprintKey generates a key for the fingerprint index.
// Format: prefix:fingerprint
func makeFingerprintKey(fp core.Fingerprint) []byte {
	prefix := candidateFpPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	buf := make([]byte, prefixSize+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(fp))
	return buf
}

// makeSchemaVersionKey generates the key holding the store schema version.
func makeSchemaVersionKey() []byte {
	return []byte(schemaVersionKey)
}
