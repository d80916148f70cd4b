package admins

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	yall "yall.in"
)

// FileStore is a Storer backed by a single line-oriented text file, the
// same file served raw by the export endpoint and hand-edited by
// operators. The file is the source of truth: every operation re-reads
// it rather than trusting an in-memory copy, and every mutation holds
// one lock across the full load-modify-save cycle so concurrent webhook
// calls and the sweeper never lose each other's writes.
type FileStore struct {
	path string
	log  *yall.Logger

	// guards every load and load-modify-save of the file
	mu sync.Mutex
}

// NewFileStore returns a FileStore persisting to path. The file doesn't
// need to exist yet; a missing file reads as an empty list.
func NewFileStore(path string, log *yall.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log,
	}
}

// Path returns the location of the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// AdminList reads the backing file and returns its contents in stored
// order.
func (f *FileStore) AdminList(ctx context.Context) (AdminList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.load(ctx)
}

// CreateAdmin appends admin to the backing file.
func (f *FileStore) CreateAdmin(ctx context.Context, admin Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := f.load(ctx)
	if err != nil {
		return err
	}
	list.Admins = append(list.Admins, admin)
	return f.save(list)
}

// DeleteExpiredAdmins drops every admin whose expiry is at or before
// now, preserving the order of the survivors. The file is only
// rewritten when at least one entry was dropped.
func (f *FileStore) DeleteExpiredAdmins(ctx context.Context, now time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list, err := f.load(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]Admin, 0, len(list.Admins))
	for _, admin := range list.Admins {
		if admin.ExpiresAt.After(now) {
			kept = append(kept, admin)
		}
	}
	removed := len(list.Admins) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	list.Admins = kept
	err = f.save(list)
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// load reads and parses the backing file. Group lines are kept
// verbatim, unparsable admin lines are skipped with a log line, and
// lines matching neither prefix are ignored. Callers must hold f.mu.
func (f *FileStore) load(_ context.Context) (AdminList, error) {
	file, err := os.Open(f.path)
	if os.IsNotExist(err) {
		return AdminList{}, nil
	}
	if err != nil {
		return AdminList{}, fmt.Errorf("opening %s: %w", f.path, err)
	}
	defer file.Close()

	var list AdminList
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, groupPrefix):
			list.Groups = append(list.Groups, line)
		case strings.HasPrefix(line, adminPrefix):
			admin, err := ParseAdminLine(line)
			if err != nil {
				f.log.WithField("line", line).WithError(err).Warn("Skipping unparsable admin line")
				continue
			}
			list.Admins = append(list.Admins, admin)
		}
	}
	err = scanner.Err()
	if err != nil {
		return AdminList{}, fmt.Errorf("reading %s: %w", f.path, err)
	}
	return list, nil
}

// save writes list to a temporary file next to the target and renames
// it into place, so a reader of the file never observes a partial
// write. Callers must hold f.mu.
func (f *FileStore) save(list AdminList) error {
	var buf strings.Builder
	for _, group := range list.Groups {
		buf.WriteString(group)
		buf.WriteByte('\n')
	}
	for _, admin := range list.Admins {
		buf.WriteString(admin.Line())
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	_, err = tmp.WriteString(buf.String())
	if err == nil {
		err = tmp.Sync()
	}
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	err = os.Rename(tmp.Name(), f.path)
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}
