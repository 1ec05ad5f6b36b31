// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice5AkJDRxgI83AWK1CBEQEDgΞΞ = ord.NewSliceSer[IndexEntry](IndexEntryMUS)
	sliceASnPSRCerdrd4Δei2xZsggΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicenkhEhYkXBjkzDΣMnOjxxHwΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var FingerprintMUS = fingerprintMUS{}

type fingerprintMUS struct{}

func (s fingerprintMUS) Marshal(v Fingerprint, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s fingerprintMUS) Unmarshal(bs []byte) (v Fingerprint, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Fingerprint(tmp)
	return
}

func (s fingerprintMUS) Size(v Fingerprint) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s fingerprintMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var CandidateRecordMUS = candidateRecordMUS{}

type candidateRecordMUS struct{}

func (s candidateRecordMUS) Marshal(v CandidateRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += slicenkhEhYkXBjkzDΣMnOjxxHwΞΞ.Marshal(v.Skills, bs[n:])
	n += varint.Float32.Marshal(v.ExperienceYears, bs[n:])
	n += ord.String.Marshal(v.Education, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.String.Marshal(v.EmbeddingText, bs[n:])
	n += ord.ByteSlice.Marshal(v.ContactJSON, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s candidateRecordMUS) Unmarshal(bs []byte) (v CandidateRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = slicenkhEhYkXBjkzDΣMnOjxxHwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExperienceYears, n1, err = varint.Float32.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Education, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EmbeddingText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ContactJSON, n1, err = ord.ByteSlice.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateRecordMUS) Size(v CandidateRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += slicenkhEhYkXBjkzDΣMnOjxxHwΞΞ.Size(v.Skills)
	size += varint.Float32.Size(v.ExperienceYears)
	size += ord.String.Size(v.Education)
	size += ord.String.Size(v.Summary)
	size += ord.String.Size(v.EmbeddingText)
	size += ord.ByteSlice.Size(v.ContactJSON)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s candidateRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicenkhEhYkXBjkzDΣMnOjxxHwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float32.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.ByteSlice.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var IndexEntryMUS = indexEntryMUS{}

type indexEntryMUS struct{}

func (s indexEntryMUS) Marshal(v IndexEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	return n + sliceASnPSRCerdrd4Δei2xZsggΞΞ.Marshal(v.Vector, bs[n:])
}

func (s indexEntryMUS) Unmarshal(bs []byte) (v IndexEntry, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = sliceASnPSRCerdrd4Δei2xZsggΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexEntryMUS) Size(v IndexEntry) (size int) {
	size = IDMUS.Size(v.Id)
	return size + sliceASnPSRCerdrd4Δei2xZsggΞΞ.Size(v.Vector)
}

func (s indexEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceASnPSRCerdrd4Δei2xZsggΞΞ.Skip(bs[n:])
	n += n1
	return
}

var IndexSnapshotMUS = indexSnapshotMUS{}

type indexSnapshotMUS struct{}

func (s indexSnapshotMUS) Marshal(v IndexSnapshot, bs []byte) (n int) {
	n = varint.Uint32.Marshal(v.Version, bs)
	n += varint.Int.Marshal(v.Dimension, bs[n:])
	return n + slice5AkJDRxgI83AWK1CBEQEDgΞΞ.Marshal(v.Entries, bs[n:])
}

func (s indexSnapshotMUS) Unmarshal(bs []byte) (v IndexSnapshot, n int, err error) {
	v.Version, n, err = varint.Uint32.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Dimension, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Entries, n1, err = slice5AkJDRxgI83AWK1CBEQEDgΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s indexSnapshotMUS) Size(v IndexSnapshot) (size int) {
	size = varint.Uint32.Size(v.Version)
	size += varint.Int.Size(v.Dimension)
	return size + slice5AkJDRxgI83AWK1CBEQEDgΞΞ.Size(v.Entries)
}

func (s indexSnapshotMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Uint32.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice5AkJDRxgI83AWK1CBEQEDgΞΞ.Skip(bs[n:])
	n += n1
	return
}
