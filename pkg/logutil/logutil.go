// Package logutil provides logging utilities.
//
// All loggers share one output, which discards everything until SetOutput or
// SetOutputFile is called.
package logutil

import (
	"io"
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	base = newBase()
	// The file opened by SetOutputFile, closed when the output changes.
	file *os.File
	lock sync.Mutex
)

func newBase() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetLevel(log.DebugLevel)
	l.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l
}

// GetLogger gets a logger for a component. The prefix, such as "[store] ",
// becomes the component field of every entry.
func GetLogger(prefix string) *log.Entry {
	return base.WithField("component", strings.Trim(prefix, "[] "))
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer.
func SetOutput(w io.Writer) {
	lock.Lock()
	defer lock.Unlock()
	closeFile()
	base.SetOutput(w)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is truncated. If the name is empty, the output is
// discarded.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	lock.Lock()
	defer lock.Unlock()
	closeFile()
	file = f
	base.SetOutput(f)
	return nil
}

func closeFile() {
	if file != nil {
		file.Close()
		file = nil
	}
}
