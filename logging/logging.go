// Package logging is a small leveled key/value logger over the standard
// library logger.
package logging

import (
	"fmt"
	stdlog "log"
	"os"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var (
	mu       sync.Mutex
	logger   = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
	minLevel = LevelInfo
)

func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

func Debug(msg string, kv ...any) { write(LevelDebug, msg, kv...) }
func Info(msg string, kv ...any)  { write(LevelInfo, msg, kv...) }
func Warn(msg string, kv ...any)  { write(LevelWarn, msg, kv...) }

func Error(msg string, err error, kv ...any) {
	write(LevelError, msg, append([]any{"err", err}, kv...)...)
}

func write(level Level, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel {
		return
	}

	line := "[" + levelNames[level] + "] " + msg
	// kv is expected as key, value, key, value, ...; a trailing odd arg is
	// dropped
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		line += " " + key + "=" + fmt.Sprint(kv[i+1])
	}

	logger.Println(line)
}
