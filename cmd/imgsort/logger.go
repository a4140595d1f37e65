package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// newLogger colors output only when out is a terminal. Cygwin and MSYS
// terminals are pipes to logrus, so colors are forced for them.
func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	tty := isTerminal(out)

	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   tty,
		DisableColors: !tty,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
