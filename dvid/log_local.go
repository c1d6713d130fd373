package dvid

import (
	"fmt"
	"log"

	"github.com/natefinch/lumberjack"
)

type stdLogger struct {
	*lumberjack.Logger
}

var logger Logger = stdLogger{}

// LogConfig is the [logging] section of a configuration file.
type LogConfig struct {
	Logfile string `toml:"logfile" yaml:"logfile"`
	MaxSize int    `toml:"max_log_size" yaml:"max_log_size"`
	MaxAge  int    `toml:"max_log_age" yaml:"max_log_age"`
	Level   string `toml:"level" yaml:"level"`
}

// SetLogger sets the log level and, if a log file is given, sends log messages
// to a rotating log file.
func (c *LogConfig) SetLogger() error {
	if c == nil {
		return nil
	}
	m, err := ParseLogMode(c.Level)
	if err != nil {
		return err
	}
	SetLogMode(m)
	if m == DebugMode {
		Verbose = true
	}
	if c.Logfile == "" {
		Debugf("Sending log messages to stderr since no log file specified.\n")
		return nil
	}
	fmt.Printf("Sending log messages to: %s\n", c.Logfile)
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
	log.SetOutput(l)
	logger = stdLogger{l}
	return nil
}

// --- Logger implementation ----

// Debugf formats its arguments analogous to fmt.Printf and records the text as a log
// message at Debug level.
func (slog stdLogger) Debugf(format string, args ...interface{}) {
	log.Printf("   DEBUG "+format, args...)
}

// Infof is like Debugf, but at Info level and will be written regardless if not in
// verbose mode.
func (slog stdLogger) Infof(format string, args ...interface{}) {
	log.Printf("    INFO "+format, args...)
}

// Warningf is like Debugf, but at Warning level.
func (slog stdLogger) Warningf(format string, args ...interface{}) {
	log.Printf(" WARNING "+format, args...)
}

// Errorf is like Debugf, but at Error level.
func (slog stdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("   ERROR "+format, args...)
}

// Criticalf is like Debugf, but at Critical level.
func (slog stdLogger) Criticalf(format string, args ...interface{}) {
	log.Printf("CRITICAL "+format, args...)
}

func (slog stdLogger) Shutdown() {
	if slog.Logger != nil {
		log.Printf("Closing log file...\n")
		slog.Close()
	}
}
