// Copyright (C) 2019-2022  Ambassador Labs
// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: Apache-2.0
//
// Contains code based on:
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_logrus.go
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_testing.go

package textui

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"git.lukeshu.com/go/typedsync"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/pflag"
)

var logLevelNames = []struct {
	Name  string
	Level dlog.LogLevel
	Abbr  string
}{
	{"error", dlog.LogLevelError, "ERR"},
	{"warn", dlog.LogLevelWarn, "WRN"},
	{"info", dlog.LogLevelInfo, "INF"},
	{"debug", dlog.LogLevelDebug, "DBG"},
	{"trace", dlog.LogLevelTrace, "TRC"},
}

// LogLevelFlag is a pflag.Value for selecting a dlog.LogLevel by
// name.
type LogLevelFlag struct {
	Level dlog.LogLevel
}

var _ pflag.Value = (*LogLevelFlag)(nil)

// Type implements pflag.Value.
func (lvl *LogLevelFlag) Type() string { return "loglevel" }

// Set implements pflag.Value.
func (lvl *LogLevelFlag) Set(str string) error {
	str = strings.ToLower(str)
	if str == "warning" {
		str = "warn"
	}
	for _, ent := range logLevelNames {
		if ent.Name == str {
			lvl.Level = ent.Level
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %q", str)
}

// String implements pflag.Value.
func (lvl *LogLevelFlag) String() string {
	for _, ent := range logLevelNames {
		if ent.Level == lvl.Level {
			return ent.Name
		}
	}
	panic(fmt.Errorf("invalid log level: %#v", lvl.Level))
}

type logger struct {
	parent *logger
	out    io.Writer
	lvl    dlog.LogLevel

	// only valid if parent is non-nil
	fieldKey string
	fieldVal any
}

var _ dlog.OptimizedLogger = (*logger)(nil)

// NewLogger returns a dlog.Logger that writes human-friendly lines
// to `out`, discarding anything less severe than `lvl`.
func NewLogger(out io.Writer, lvl dlog.LogLevel) dlog.Logger {
	return &logger{
		out: out,
		lvl: lvl,
	}
}

// Helper implements dlog.Logger.
func (l *logger) Helper() {}

// WithField implements dlog.Logger.
func (l *logger) WithField(key string, value any) dlog.Logger {
	return &logger{
		parent: l,
		out:    l.out,
		lvl:    l.lvl,

		fieldKey: key,
		fieldVal: value,
	}
}

type logWriter struct {
	log *logger
	lvl dlog.LogLevel
}

// Write implements io.Writer.
func (lw logWriter) Write(data []byte) (int, error) {
	lw.log.log(lw.lvl, func(w io.Writer) {
		_, _ = w.Write(bytes.TrimSuffix(data, []byte("\n")))
	})
	return len(data), nil
}

// StdLogger implements dlog.Logger.
func (l *logger) StdLogger(lvl dlog.LogLevel) *log.Logger {
	return log.New(logWriter{log: l, lvl: lvl}, "", 0)
}

// Log implements dlog.Logger.
func (l *logger) Log(lvl dlog.LogLevel, msg string) {
	panic("should not happen: optimized log methods should be used instead")
}

// UnformattedLog implements dlog.OptimizedLogger.
func (l *logger) UnformattedLog(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprint(w, args...)
	})
}

// UnformattedLogln implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogln(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprintln(w, args...)
	})
}

// UnformattedLogf implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogf(lvl dlog.LogLevel, format string, args ...any) {
	l.log(lvl, func(w io.Writer) {
		_, _ = printer.Fprintf(w, format, args...)
	})
}

var (
	logBufPool = typedsync.Pool[*bytes.Buffer]{
		New: func() *bytes.Buffer {
			return new(bytes.Buffer)
		},
	}
	logMu      sync.Mutex
	thisModDir string
)

func init() {
	//nolint:dogsled // I can't change the signature of the stdlib.
	_, file, _, _ := runtime.Caller(0)
	thisModDir = filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

// fields returns the fields attached to l, innermost-wins, split in
// to those that go to the left of the message and those that go to
// the right of it.
func (l *logger) fields() (vals map[string]any, left, right []string) {
	vals = make(map[string]any)
	var keys []string
	for f := l; f.parent != nil; f = f.parent {
		if _, exists := vals[f.fieldKey]; exists {
			continue
		}
		vals[f.fieldKey] = f.fieldVal
		keys = append(keys, f.fieldKey)
	}
	sort.Slice(keys, func(i, j int) bool {
		iOrd, jOrd := fieldOrd(keys[i]), fieldOrd(keys[j])
		if iOrd != jOrd {
			return iOrd < jOrd
		}
		return keys[i] < keys[j]
	})
	split := sort.Search(len(keys), func(i int) bool {
		return fieldOrd(keys[i]) >= 0
	})
	return vals, keys[:split], keys[split:]
}

// caller returns the "file:line" of the first stack frame that is in
// this module but outside of this package.
func caller() (string, bool) {
	const (
		thisModule             = "git.lukeshu.com/glist"
		thisPackage            = "git.lukeshu.com/glist/lib/textui"
		maximumCallerDepth int = 25
		minimumCallerDepth int = 4 // runtime.Callers + caller + .log + .Log
	)
	var pcs [maximumCallerDepth]uintptr
	depth := runtime.Callers(minimumCallerDepth, pcs[:])
	frames := runtime.CallersFrames(pcs[:depth])
	for f, again := frames.Next(); again; f, again = frames.Next() {
		if !strings.HasPrefix(f.Function, thisModule+"/") {
			continue
		}
		if strings.HasPrefix(f.Function, thisPackage+".") {
			continue
		}
		file := f.File[strings.LastIndex(f.File, thisModDir+"/")+len(thisModDir+"/"):]
		return fmt.Sprintf("%s:%d", file, f.Line), true
	}
	return "", false
}

func (l *logger) log(lvl dlog.LogLevel, writeMsg func(io.Writer)) {
	if lvl > l.lvl {
		return
	}
	logBuf, _ := logBufPool.Get()
	defer logBufPool.Put(logBuf)
	defer logBuf.Reset()

	// time
	const timeFmt = "15:04:05.0000"
	logBuf.WriteString(time.Now().Format(timeFmt))

	// level
	for _, ent := range logLevelNames {
		if ent.Level == lvl {
			logBuf.WriteString(" " + ent.Abbr)
			break
		}
	}

	// message, surrounded by fields
	vals, left, right := l.fields()
	for _, key := range left {
		writeField(logBuf, key, vals[key])
	}
	logBuf.WriteString(" : ")
	writeMsg(logBuf)
	if len(right) > 0 {
		logBuf.WriteString(" :")
	}
	for _, key := range right {
		writeField(logBuf, key, vals[key])
	}

	// caller
	if where, ok := caller(); ok {
		if len(right) == 0 {
			logBuf.WriteString(" :")
		}
		fmt.Fprintf(logBuf, " (from %s)", where)
	}

	logBuf.WriteByte('\n')

	logMu.Lock()
	_, _ = l.out.Write(logBuf.Bytes())
	logMu.Unlock()
}

// fieldOrd returns the sort-position for a given log-field-key.  Lower return
// values should be positioned on the left when logging, and higher values
// should be positioned on the right; values <0 should be on the left of the log
// message, while values ≥0 should be on the right of the log message.
func fieldOrd(key string) int {
	switch key {
	case "THREAD": // dgroup
		return -99
	case "glist.read-json-file":
		return -20
	case "glist.step":
		return -9
	case "glist.op":
		return -8
	default:
		return 1
	}
}

func needsQuote(val []byte) bool {
	if bytes.HasPrefix(val, []byte(`"`)) {
		return true
	}
	for _, r := range string(val) {
		if !unicode.IsPrint(r) || r == ' ' {
			return true
		}
	}
	return false
}

func writeField(w io.Writer, key string, val any) {
	valBuf, _ := logBufPool.Get()
	defer func() {
		valBuf.Reset()
		logBufPool.Put(valBuf)
	}()
	_, _ = printer.Fprint(valBuf, val)
	valStr := valBuf.String()
	if needsQuote(valBuf.Bytes()) {
		valStr = fmt.Sprintf("%q", valStr)
	}

	name := key
	switch {
	case name == "THREAD":
		name = "thread"
		valStr = strings.TrimPrefix(valStr, "/main")
		valStr = strings.TrimPrefix(valStr, "/")
		if valStr == "" {
			return
		}
	case strings.HasPrefix(name, "glist."):
		name = strings.TrimPrefix(name, "glist.")
	}

	fmt.Fprintf(w, " %s=%s", name, valStr)
}
