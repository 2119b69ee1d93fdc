package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir      = "logs"
	logFileName = "sushi-belt.log"
	maxLogSize  = 10 * 1024 * 1024 // bytes
	maxBackups  = 3
)

// setupLogging routes the standard logger to a rotating file when debug is on
// With debug off every log line is discarded; the terminal belongs to the screen either way
// Returns the file to close on exit, or nil
func setupLogging(debug bool) io.Closer {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	lj := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSize / (1024 * 1024), // megabytes
		MaxBackups: maxBackups,
	}
	log.SetOutput(lj)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("[Main] logging to %s", lj.Filename)
	return lj
}
