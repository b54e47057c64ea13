package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	jsoniter "github.com/json-iterator/go"
	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/mazegraph/grid"
)

const solutionPrefix = "sol:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrClosed is returned by operations on a closed or uninitialized store.
var ErrClosed = errors.New("store: store is not initialized")

// Options configures Open.
type Options struct {
	// InMemory keeps the database in memory; path is then only a name.
	InMemory bool
	// Sync forces an fsync on every write.
	Sync bool
}

// Record is one cached solution.
type Record struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Path     []grid.Cell `json:"path"`
	Vertices int         `json:"vertices"`
	Edges    int         `json:"edges"`
	SolvedAt time.Time   `json:"solved_at"`
}

// Store wraps the Pebble database holding solution records.
type Store struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
}

// Open opens or creates the cache at path.
func Open(path string, opts Options) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store: database path is empty")
	}
	pebbleOpts := &pebble.Options{}
	if opts.InMemory {
		pebbleOpts.FS = vfs.NewMem()
	} else if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure directory: %w", err)
	}

	db, err := pebble.Open(path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	s := &Store{db: db, writeOpts: pebble.NoSync}
	if opts.Sync {
		s.writeOpts = pebble.Sync
	}

	return s, nil
}

// Fingerprint hashes the grid's dimensions and cells with xxh3.
// Two grids share a fingerprint only if they are (almost surely) identical.
func Fingerprint(g *grid.Grid) uint64 {
	w, h := g.Width(), g.Height()
	buf := make([]byte, 16, 16+(w*h+7)/8)
	binary.BigEndian.PutUint64(buf[0:8], uint64(w))
	binary.BigEndian.PutUint64(buf[8:16], uint64(h))
	var acc byte
	bit := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if g.At(grid.Cell{Row: r, Col: c}) {
				acc |= 1 << bit
			}
			if bit++; bit == 8 {
				buf = append(buf, acc)
				acc, bit = 0, 0
			}
		}
	}
	if bit > 0 {
		buf = append(buf, acc)
	}

	return xxh3.Hash(buf)
}

// Get fetches the record for fingerprint fp. It returns (nil, nil) on a miss.
func (s *Store) Get(fp uint64) (*Record, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	value, closer, err := s.db.Get(key(fp))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: get %016x: %w", fp, err)
	}
	defer closer.Close()

	var rec Record
	if err = json.Unmarshal(value, &rec); err != nil {
		return nil, fmt.Errorf("store: decode %016x: %w", fp, err)
	}

	return &rec, nil
}

// Put stores rec under fingerprint fp, replacing any previous record.
func (s *Store) Put(fp uint64, rec Record) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: encode %016x: %w", fp, err)
	}
	if err = s.db.Set(key(fp), value, s.writeOpts); err != nil {
		return fmt.Errorf("store: put %016x: %w", fp, err)
	}

	return nil
}

// Delete removes the record for fp; deleting a missing record is not an error.
func (s *Store) Delete(fp uint64) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	if err := s.db.Delete(key(fp), s.writeOpts); err != nil {
		return fmt.Errorf("store: delete %016x: %w", fp, err)
	}

	return nil
}

// Close flushes and closes the database. Closing twice is a no-op.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func key(fp uint64) []byte {
	k := make([]byte, len(solutionPrefix)+8)
	copy(k, solutionPrefix)
	binary.BigEndian.PutUint64(k[len(solutionPrefix):], fp)

	return k
}
