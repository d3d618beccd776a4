package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once
var defaultLogLevel = parseLevel(os.Getenv("LLMCALC_HTTP_LOG_LEVEL"))

// SetDefaultLogLevel sets the request log level used when a request carries no override.
func SetDefaultLogLevel(s string) { defaultLogLevel = parseLevel(s) }

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logRequest emits one line for a finished request when the effective level
// for r is at least lvl. A nil r uses the default level.
func logRequest(r *http.Request, lvl LogLevel, status int, dur time.Duration, err error, msg string) {
	eff := defaultLogLevel
	if r != nil {
		eff = requestLogLevel(r)
	}
	if eff < lvl {
		return
	}
	if zlog == nil {
		if r != nil {
			log.Printf("%s path=%s status=%d dur=%s err=%v", msg, r.URL.Path, status, dur, err)
		} else {
			log.Printf("%s status=%d err=%v", msg, status, err)
		}
		return
	}
	ev := zlog.Info()
	if lvl == LevelError {
		ev = zlog.Error()
	}
	ev = ev.Int("status", status).Dur("dur", dur)
	if r != nil {
		ev = ev.Str("path", r.URL.Path)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			ev = ev.Str("request_id", rid)
		}
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
