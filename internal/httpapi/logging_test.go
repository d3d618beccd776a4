package httpapi

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("shorthand query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	// query wins over header
	r = httptest.NewRequest("GET", "/x?log=off", nil)
	r.Header.Set("X-Log-Level", "debug")
	if got := requestLogLevel(r); got != LevelOff {
		t.Fatalf("query should win: %v", got)
	}
}

func TestSetDefaultLogLevel(t *testing.T) {
	orig := defaultLogLevel
	defer func() { defaultLogLevel = orig }()

	SetDefaultLogLevel("error")
	if got := requestLogLevel(httptest.NewRequest("GET", "/x", nil)); got != LevelError {
		t.Fatalf("default level not applied: %v", got)
	}
}

func TestLogRequest_StdlibFallback(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	defer log.SetOutput(orig)
	log.SetOutput(&buf)
	zlog = nil

	r := httptest.NewRequest("GET", "/v1/estimate?log=info", nil)
	logRequest(r, LevelInfo, 400, time.Millisecond, errors.New("boom"), "estimate")
	out := buf.String()
	if !strings.Contains(out, "path=/v1/estimate") || !strings.Contains(out, "status=400") || !strings.Contains(out, "boom") {
		t.Fatalf("unexpected log line: %q", out)
	}

	buf.Reset()
	r = httptest.NewRequest("GET", "/v1/estimate?log=error", nil)
	logRequest(r, LevelInfo, 200, time.Millisecond, nil, "estimate")
	if buf.Len() != 0 {
		t.Fatalf("info line should be suppressed at error level: %q", buf.String())
	}
}
