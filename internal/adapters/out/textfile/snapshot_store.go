// Package textfile stores engine snapshots in a sectioned, comma-separated text file.
//
// The file has three sections, each introduced by a header line:
//
//	[TRUCKS]
//	id,registration,capacity,fuel consumption,status
//	[DRIVERS]
//	id,full name,license,available
//	[SHIPMENTS]
//	id,order number,description,weight,refrigerated,truck id,driver id,distance,
//	planned date,departure time,arrival time,status,cost
//
// Fields follow RFC 4180 quoting, statuses are written by name, times in RFC 3339
// and an empty field stands for an absent value.
package textfile

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"freight/internal/core/ports"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore reads and writes snapshots at a fixed path.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

func (s *SnapshotStore) Path() string {
	return s.path
}

// Load parses the file. A missing file is an empty snapshot; any malformed
// line fails the whole load.
func (s *SnapshotStore) Load(ctx context.Context) (ports.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return ports.Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ports.Snapshot{}, nil
	}
	if err != nil {
		return ports.Snapshot{}, errors.Wrapf(err, "read %s", s.path)
	}

	snapshot, err := decode(bytes.NewReader(data))
	if err != nil {
		return ports.Snapshot{}, errors.Wrapf(err, "parse %s", s.path)
	}
	return snapshot, nil
}

// Save writes the snapshot to a temporary file next to the target and renames
// it into place, so readers never observe a partially written file.
func (s *SnapshotStore) Save(ctx context.Context, snapshot ports.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := encode(&buf, snapshot); err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "sync %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "replace %s", s.path)
	}
	return nil
}
