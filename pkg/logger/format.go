package logger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	TimeFormat = "2006-01-02 15:04:05"

	JsonFORMAT     = "json"
	TextFORMAT     = "text"
	DetailedFORMAT = "detailed"
)

type Formatter interface {
	Format(entry LogEntry) string
}

type LogEntry struct {
	Timestamp time.Time
	Name      string
	Level     string
	Message   string

	// Source location of the logging call. Only the detailed and json
	// formatters render these.
	File     string
	Function string
	Line     int
}

// textFormatter is the file-sink layout: timestamp, logger name, level and
// message, without source location.
type textFormatter struct{}

func (tf *textFormatter) Format(e LogEntry) string {
	t := e.Timestamp.Format(TimeFormat)
	return fmt.Sprintf("%s - %s - %s - %s", t, e.Name, e.Level, e.Message)
}

// detailedFormatter adds the call site between level and message. It is the
// console layout.
type detailedFormatter struct{}

func (df *detailedFormatter) Format(e LogEntry) string {
	t := e.Timestamp.Format(TimeFormat)
	return fmt.Sprintf("%s - %s - %s - %s:%s:%d - %s",
		t, e.Name, e.Level, e.File, e.Function, e.Line, e.Message)
}

type jsonFormatter struct{}

func (jf *jsonFormatter) Format(e LogEntry) string {
	data := map[string]interface{}{
		"timestamp": e.Timestamp.Format(time.RFC3339Nano),
		"name":      e.Name,
		"level":     e.Level,
		"message":   e.Message,
	}
	if e.File != "" {
		data["source"] = fmt.Sprintf("%s:%s:%d", e.File, e.Function, e.Line)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return `{"ERROR":"json marshal failed"}`
	}
	return string(b)
}

func getFormatter(name string) Formatter {
	switch strings.ToLower(name) {
	case JsonFORMAT:
		return &jsonFormatter{}
	case DetailedFORMAT:
		return &detailedFormatter{}
	case TextFORMAT:
		return &textFormatter{}
	default:
		return &textFormatter{}
	}
}
