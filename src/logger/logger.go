package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

const (
	EventServiceStartup    = "SERVICE_STARTUP"
	EventServiceShutdown   = "SERVICE_SHUTDOWN"
	EventDBConnection      = "DB_CONNECTION"
	EventDBError           = "DB_ERROR"
	EventHTTPRequest       = "HTTP_REQUEST"
	EventValidationFailure = "VALIDATION_FAILURE"
	EventGeneral           = "GENERAL"
)

type Entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     Level                  `json:"level"`
	Service   string                 `json:"service"`
	EventType string                 `json:"event_type"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type Config struct {
	ServiceName string
	Environment string
	LogFilePath string
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
}

type Logger struct {
	service string
	out     io.Writer
	mu      sync.Mutex
}

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

var (
	defaultMu sync.RWMutex
	std       = NewWithWriter("chill-gamer-server", os.Stdout)
)

// Init replaces the package level logger with one writing to stdout and to
// a rotating file at cfg.LogFilePath.
func Init(cfg Config) {
	SetDefault(New(cfg))
}

func SetDefault(l *Logger) {
	defaultMu.Lock()
	std = l
	defaultMu.Unlock()
}

func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return std
}

func New(cfg Config) *Logger {
	writers := []io.Writer{os.Stdout}

	if cfg.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot create log directory for %s: %v, using stdout only\n", cfg.LogFilePath, err)
		} else {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.LogFilePath,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   cfg.Environment == "production",
			})
		}
	}

	return NewWithWriter(cfg.ServiceName, io.MultiWriter(writers...))
}

func NewWithWriter(service string, w io.Writer) *Logger {
	return &Logger{service: service, out: w}
}

func (l *Logger) log(level Level, eventType, message string, details map[string]interface{}) {
	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Service:   l.service,
		EventType: eventType,
		Message:   maskEmails(message),
		Details:   sanitize(details),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cannot marshal log entry: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write(append(data, '\n'))
}

func (l *Logger) Info(eventType, message string, details map[string]interface{}) {
	l.log(LevelInfo, eventType, message, details)
}

func (l *Logger) Warn(eventType, message string, details map[string]interface{}) {
	l.log(LevelWarn, eventType, message, details)
}

func (l *Logger) Error(eventType, message string, details map[string]interface{}) {
	l.log(LevelError, eventType, message, details)
}

func (l *Logger) Fatal(eventType, message string, details map[string]interface{}) {
	l.log(LevelError, eventType, message, details)
	os.Exit(1)
}

func Info(eventType, message string, details map[string]interface{}) {
	Default().Info(eventType, message, details)
}

func Warn(eventType, message string, details map[string]interface{}) {
	Default().Warn(eventType, message, details)
}

func Error(eventType, message string, details map[string]interface{}) {
	Default().Error(eventType, message, details)
}

func Fatal(eventType, message string, details map[string]interface{}) {
	Default().Fatal(eventType, message, details)
}

// Fields builds a details map from alternating keys and values. Pairs with
// a non-string key are dropped.
func Fields(kv ...interface{}) map[string]interface{} {
	details := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		details[key] = kv[i+1]
	}
	return details
}

func sanitize(details map[string]interface{}) map[string]interface{} {
	if len(details) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(details))
	for k, v := range details {
		switch val := v.(type) {
		case string:
			out[k] = maskEmails(val)
		case error:
			out[k] = maskEmails(val.Error())
		case map[string]interface{}:
			out[k] = sanitize(val)
		default:
			out[k] = val
		}
	}
	return out
}

func maskEmails(s string) string {
	return emailRegex.ReplaceAllStringFunc(s, maskEmail)
}

func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "[REDACTED_EMAIL]"
	}
	local, domain := email[:at], email[at+1:]
	if len(local) <= 2 {
		return "**@" + domain
	}
	return local[:2] + "***@" + domain
}
