package localrepo

import (
	"bytes"
	"encoding/binary"
	"slices"
	"strings"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	lverrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/zerr"
)

// Index key prefixes. Keys are "<prefix><project>\x00<checksum>".
const (
	historyPrefix = "h:"
	lookupPrefix  = "l:"
	keySeparator  = "\x00"
)

// index is the leveldb database tracking build history and remote lookups.
type index struct {
	db *leveldb.DB
}

// buildEntry is one saved build of a project.
type buildEntry struct {
	checksum string
	savedAt  time.Time
}

// lookupMarker records the first and the latest unsuccessful remote lookup of a key.
type lookupMarker struct {
	created time.Time
	last    time.Time
}

func openIndex(path string) (*index, error) {
	db, err := leveldb.OpenFile(path, nil)
	if lverrors.IsCorrupted(err) {
		db, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexOpenFailed.Error()), "path", path)
	}
	return &index{db: db}, nil
}

func (i *index) close() error {
	return i.db.Close()
}

func entryKey(prefix, project, checksum string) []byte {
	return []byte(prefix + project + keySeparator + checksum)
}

func projectPrefix(prefix, project string) []byte {
	return []byte(prefix + project + keySeparator)
}

func encodeTimes(times ...time.Time) []byte {
	buf := make([]byte, 8*len(times))
	for n, t := range times {
		binary.BigEndian.PutUint64(buf[8*n:], uint64(t.UnixNano())) //nolint:gosec // timestamps are positive
	}
	return buf
}

func decodeTime(b []byte, n int) time.Time {
	if len(b) < 8*(n+1) {
		return time.Time{}
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(b[8*n:]))) //nolint:gosec // written by encodeTimes
}

func (i *index) recordBuild(key domain.CacheKey, at time.Time) error {
	batch := new(leveldb.Batch)
	batch.Put(entryKey(historyPrefix, key.Project, key.Checksum), encodeTimes(at))
	batch.Delete(entryKey(lookupPrefix, key.Project, key.Checksum))
	if err := i.db.Write(batch, nil); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "key", key.String())
	}
	return nil
}

// builds returns the saved builds of project, newest first.
func (i *index) builds(project string) ([]buildEntry, error) {
	prefix := projectPrefix(historyPrefix, project)
	it := i.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()

	var entries []buildEntry
	for it.Next() {
		entries = append(entries, buildEntry{
			checksum: string(bytes.TrimPrefix(it.Key(), prefix)),
			savedAt:  decodeTime(it.Value(), 0),
		})
	}
	if err := it.Error(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheIO.Error()), "project", project)
	}

	slices.SortFunc(entries, func(a, b buildEntry) int {
		if c := b.savedAt.Compare(a.savedAt); c != 0 {
			return c
		}
		return strings.Compare(a.checksum, b.checksum)
	})
	return entries, nil
}

func (i *index) lookup(key domain.CacheKey) (lookupMarker, bool) {
	b, err := i.db.Get(entryKey(lookupPrefix, key.Project, key.Checksum), nil)
	if err != nil {
		return lookupMarker{}, false
	}
	return lookupMarker{created: decodeTime(b, 0), last: decodeTime(b, 1)}, true
}

func (i *index) markLookup(key domain.CacheKey, now time.Time) error {
	marker, ok := i.lookup(key)
	if !ok {
		marker.created = now
	}
	marker.last = now

	err := i.db.Put(entryKey(lookupPrefix, key.Project, key.Checksum), encodeTimes(marker.created, marker.last), nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "key", key.String())
	}
	return nil
}

func (i *index) forget(project, checksum string) error {
	batch := new(leveldb.Batch)
	batch.Delete(entryKey(historyPrefix, project, checksum))
	batch.Delete(entryKey(lookupPrefix, project, checksum))
	if err := i.db.Write(batch, nil); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "project", project)
	}
	return nil
}

// purge removes every entry of project, or of every project when project is empty.
func (i *index) purge(project string) error {
	batch := new(leveldb.Batch)
	for _, prefix := range []string{historyPrefix, lookupPrefix} {
		var rng *util.Range
		if project == "" {
			rng = util.BytesPrefix([]byte(prefix))
		} else {
			rng = util.BytesPrefix(projectPrefix(prefix, project))
		}
		it := i.db.NewIterator(rng, nil)
		for it.Next() {
			batch.Delete(slices.Clone(it.Key()))
		}
		it.Release()
		if err := it.Error(); err != nil {
			return zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
		}
	}
	if err := i.db.Write(batch, nil); err != nil {
		return zerr.Wrap(err, domain.ErrIndexWriteFailed.Error())
	}
	return nil
}

// lookupDue applies the remote lookup throttle: at most once a minute while the
// marker is younger than an hour, once an hour while younger than a day, and
// once a day afterwards.
func lookupDue(marker lookupMarker, now time.Time) bool {
	created, last := marker.created, marker.last
	switch {
	case now.Before(created.Add(time.Hour)) && now.Before(last.Add(time.Minute)):
		return false
	case now.Before(created.Add(24*time.Hour)) && now.Before(last.Add(time.Hour)):
		return false
	case now.After(created.Add(24*time.Hour)) && now.Before(last.Add(24*time.Hour)):
		return false
	default:
		return true
	}
}
