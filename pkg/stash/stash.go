// Package stash implements the subprogram that manages stored values, and the
// helper used by other subprograms to open the store.
package stash

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/myty/nushell/pkg/logutil"
	"github.com/myty/nushell/pkg/prog"
	"github.com/myty/nushell/pkg/store"
)

var logger = logutil.GetLogger("[stash] ")

// Program handles -list and -del. It is not suitable for other invocations.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.List && f.Del == "" {
		return prog.ErrNotSuitable
	}
	if f.List && f.Del != "" {
		return prog.BadUsage("-list and -del cannot be used together")
	}
	if f.Save != "" || f.Load != "" {
		return prog.BadUsage("-list and -del cannot be used with -save or -load")
	}
	if len(args) > 0 {
		return prog.BadUsage("-list and -del take no arguments")
	}

	st, err := Open(f.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	if f.Del != "" {
		logger.Debugf("deleting %s", f.Del)
		return st.DelValue(f.Del)
	}
	names, err := st.ValueNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(fds[1], name)
	}
	return nil
}

// Open opens the store at path, or at DefaultPath if path is empty. The
// directory of the store is created if needed.
func Open(path string) (store.DBStore, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	logger.Debugf("opening store at %s", path)
	return store.NewStore(path)
}

// DefaultPath returns the path of the store used when none is configured.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate store: %w", err)
	}
	return filepath.Join(dir, "nuvalue", "stash.db"), nil
}
