// Package lsm wraps Pebble (CockroachDB's LSM storage engine) behind the
// common Index interface. It runs on an in-memory filesystem and serves as
// an independent reference for the B-tree's answers.
package lsm

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btree-query-bench/btree/index"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var _ index.Index = (*LSM)(nil)

// LSM stores every inserted key once per insert. Pebble keys are unique, so
// each stored key is the encoded index key followed by an insert sequence
// number.
//
// Insert and Contains have no error return; the first Pebble error is kept
// and reported by Err.
type LSM struct {
	db  *pebble.DB
	seq uint64
	err error
}

// Open creates an empty Pebble database backed by memory.
func Open() (*LSM, error) {
	opts := &pebble.Options{
		FS:           vfs.NewMem(),
		MemTableSize: 16 << 20,
		// Keep 2 memtables so one can be flushed while the other is active.
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}

	db, err := pebble.Open("", opts)
	if err != nil {
		return nil, fmt.Errorf("lsm: open: %w", err)
	}
	return &LSM{db: db}, nil
}

// Close shuts down Pebble and drops the in-memory data.
func (l *LSM) Close() error {
	return l.db.Close()
}

// Err returns the first error hit by Insert or Contains.
func (l *LSM) Err() error { return l.err }

func (l *LSM) Insert(key int64) {
	if l.err != nil {
		return
	}
	if err := l.db.Set(storedKey(key, l.seq), nil, pebble.NoSync); err != nil {
		l.err = fmt.Errorf("lsm: insert %d: %w", key, err)
		return
	}
	l.seq++
}

func (l *LSM) Contains(key int64) bool {
	return l.Count(key) > 0
}

// Count returns how many times key was inserted.
func (l *LSM) Count(key int64) int {
	if l.err != nil {
		return 0
	}
	prefix := encodeKey(key)
	iter, err := l.db.NewIter(&pebble.IterOptions{LowerBound: prefix})
	if err != nil {
		l.err = fmt.Errorf("lsm: count %d: %w", key, err)
		return 0
	}
	c := 0
	for valid := iter.SeekGE(prefix); valid && bytes.HasPrefix(iter.Key(), prefix); valid = iter.Next() {
		c++
	}
	if err := iter.Close(); err != nil && l.err == nil {
		l.err = fmt.Errorf("lsm: count %d: %w", key, err)
	}
	return c
}

// Len returns the number of successful inserts.
func (l *LSM) Len() int { return int(l.seq) }

// ─── Key encoding ─────────────────────────────────────────────────────────────

// encodeKey encodes an int64 as 8 big-endian bytes with the sign bit flipped,
// so byte order matches signed order.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k)^(1<<63))
	return b
}

func storedKey(k int64, seq uint64) []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b, uint64(k)^(1<<63))
	binary.BigEndian.PutUint64(b[8:], seq)
	return b
}
