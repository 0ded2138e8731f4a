// Package store persists generated fingerprints on disk. Each fingerprint
// is one file holding a CBOR record, optionally compressed, behind a small
// header carrying the compression tag, the uncompressed length and a BLAKE3
// checksum of the uncompressed record.
package store

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"lifehash/internal/fingerprint"

	"github.com/zeebo/blake3"
)

var (
	// ErrNotFound is returned by Get when no record exists.
	ErrNotFound = errors.New("store: record not found")
	// ErrCorrupt is returned when a record fails its checksum or cannot be
	// decoded.
	ErrCorrupt = errors.New("store: record corrupt")
)

const (
	headerSize   = 1 + 4 + 32
	fileSuffix   = ".lh"
	maxBodyBytes = 1 << 24
)

// Options configures a Store.
type Options struct {
	Compression Compression
	Logger      *slog.Logger
}

// Store is a directory of fingerprint records, sharded by version and by
// the first digest byte. It is safe for concurrent use: writes go through
// a temp file and rename.
type Store struct {
	root        string
	compression Compression
	logger      *slog.Logger
}

// Open prepares root for use, creating it if needed.
func Open(root string, opts Options) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("store: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{root: root, compression: opts.Compression, logger: logger}, nil
}

// Root returns the store directory.
func (s *Store) Root() string { return s.root }

// Path returns the file a record for digest and v lives in.
func (s *Store) Path(digest []byte, v fingerprint.Version) string {
	name := hex.EncodeToString(digest)
	shard := "00"
	if len(name) >= 2 {
		shard = name[:2]
	}
	return filepath.Join(s.root, v.String(), shard, name+fileSuffix)
}

// Put writes rec, replacing any earlier record for the same key.
func (s *Store) Put(rec Record) error {
	data, err := Encode(rec, s.compression)
	if err != nil {
		return err
	}
	finalPath := s.Path(rec.Digest, rec.Version)
	dir := filepath.Dir(finalPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating shard directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "record-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp record file: %w", err)
	}
	tmpPath := tmpFile.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing record: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp record file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("renaming record file: %w", err)
	}
	success = true
	s.logger.Debug("stored fingerprint",
		"path", finalPath,
		"version", rec.Version.String(),
		"bytes", len(data),
	)
	return nil
}

// Get reads the record for digest and v.
func (s *Store) Get(digest []byte, v fingerprint.Version) (Record, error) {
	path := s.Path(digest, v)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("reading record: %w", err)
	}
	rec, err := Decode(data)
	if err != nil {
		s.logger.Warn("discarding unreadable record", "path", path, "error", err)
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	if rec.Version != v || string(rec.Digest) != string(digest) {
		return Record{}, fmt.Errorf("%w: %s holds a different key", ErrCorrupt, path)
	}
	return rec, nil
}

// Encode serializes rec with the requested compression. Bodies that do not
// shrink are stored uncompressed.
func Encode(rec Record, c Compression) ([]byte, error) {
	raw, err := encMode.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	body, err := compress(raw, c)
	if errors.Is(err, errIncompressible) {
		c, body, err = CompressionNone, raw, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]byte, headerSize, headerSize+len(body))
	out[0] = byte(c)
	binary.BigEndian.PutUint32(out[1:5], uint32(len(raw)))
	sum := blake3.Sum256(raw)
	copy(out[5:headerSize], sum[:])
	return append(out, body...), nil
}

// Decode parses a record written by Encode.
func Decode(data []byte) (Record, error) {
	if len(data) < headerSize {
		return Record{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	c := Compression(data[0])
	size := int(binary.BigEndian.Uint32(data[1:5]))
	if size > maxBodyBytes {
		return Record{}, fmt.Errorf("%w: declared size %d", ErrCorrupt, size)
	}
	raw, err := decompress(data[headerSize:], c, size)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if sum := blake3.Sum256(raw); string(sum[:]) != string(data[5:headerSize]) {
		return Record{}, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}
	var rec Record
	if err := decMode.Unmarshal(raw, &rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return rec, nil
}
