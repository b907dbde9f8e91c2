package log

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range testCases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", ServiceName: "cas-service", Output: &buf})
	logger.Debug().Str(FieldCASNumber, "7732-18-5").Msg("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v: %s", err, buf.String())
	}
	if entry[FieldService] != "cas-service" {
		t.Errorf("service = %v", entry[FieldService])
	}
	if entry[FieldCASNumber] != "7732-18-5" {
		t.Errorf("cas_number = %v", entry[FieldCASNumber])
	}
}

func TestCtxFallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf})
	ctx := WithLogger(context.Background(), logger)

	l := Ctx(ctx)
	l.Info().Msg("scoped")
	if buf.Len() == 0 {
		t.Error("context logger did not write")
	}

	// No logger in context: must not panic.
	g := Ctx(context.Background())
	g.Debug().Msg("global")
}

func TestWithStr(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(Config{Output: &buf}))
	ctx = WithStr(ctx, FieldBatchID, "batch-1")

	l := Ctx(ctx)
	l.Info().Msg("seeded")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v: %s", err, buf.String())
	}
	if entry[FieldBatchID] != "batch-1" {
		t.Errorf("batch_id = %v", entry[FieldBatchID])
	}
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(GinMiddleware(New(Config{Output: &buf})))
	r.GET("/ping", func(c *gin.Context) {
		l := Ctx(c.Request.Context())
		l.Info().Msg("inside")
		c.Status(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(headerRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(headerRequestID); got != "req-1" {
		t.Errorf("X-Request-ID = %q, want req-1", got)
	}

	dec := json.NewDecoder(&buf)
	var lines []map[string]interface{}
	for dec.More() {
		var entry map[string]interface{}
		if err := dec.Decode(&entry); err != nil {
			t.Fatal(err)
		}
		lines = append(lines, entry)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2", len(lines))
	}
	for _, entry := range lines {
		if entry[FieldRequestID] != "req-1" {
			t.Errorf("request_id = %v", entry[FieldRequestID])
		}
	}
	last := lines[1]
	if last["level"] != "warn" {
		t.Errorf("level = %v, want warn", last["level"])
	}
	if last[FieldStatus] != float64(http.StatusTeapot) {
		t.Errorf("status = %v", last[FieldStatus])
	}
}
