package mfreport

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// logFileName is the run log appended to in the output directory.
const logFileName = "mfreport.log"

// NewRunLogger returns a logger that timestamps every line and tees it to
// stdout and a log file under dir. The progress sink is for operability only:
// if the log file cannot be opened the logger degrades to stdout, it never
// fails the run. The returned close function releases the file and is always
// safe to call.
func NewRunLogger(dir string) (*log.Logger, func() error) {
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger := log.New(os.Stdout, "", log.LstdFlags)
		logger.Printf("log file unavailable (%v), logging to stdout only", err)
		return logger, func() error { return nil }
	}
	return log.New(io.MultiWriter(os.Stdout, f), "", log.LstdFlags), f.Close
}
