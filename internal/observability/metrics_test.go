package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danmuck/discodec/internal/dis"
	"github.com/danmuck/discodec/internal/dis/record"
	"github.com/danmuck/discodec/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestNewMetricsReusesRegisteredCollectors(t *testing.T) {
	testlog.Start(t)
	reg := prometheus.NewRegistry()
	a, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	b, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	a.RecordSuccess("encode", "EntityID", 6)
	b.RecordSuccess("encode", "EntityID", 6)
	if got := testutil.ToFloat64(a.operations.WithLabelValues("encode", "EntityID", ResultOK)); got != 2 {
		t.Fatalf("operations=%v want 2", got)
	}
}

func TestCodecObserverCountsOutcomes(t *testing.T) {
	testlog.Start(t)
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	codec := record.New(record.WithObserver(NewCodecObserver(m, logger)))

	data, err := codec.Marshal(&dis.EntityID{Site: 1, Application: 2, Entity: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := codec.Unmarshal(data, dis.NewEntityID()); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := codec.Unmarshal(data[:3], dis.NewEntityID()); err == nil {
		t.Fatalf("expected underrun")
	}

	if got := testutil.ToFloat64(m.operations.WithLabelValues("encode", "EntityID", ResultOK)); got != 1 {
		t.Fatalf("encode ok=%v", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("decode", "EntityID", ResultError)); got != 1 {
		t.Fatalf("decode error=%v", got)
	}
	if got := testutil.ToFloat64(m.bytes.WithLabelValues("decode", "EntityID")); got != 6 {
		t.Fatalf("decode bytes=%v", got)
	}
	if !strings.Contains(logs.String(), `"message":"codec failure"`) {
		t.Fatalf("failure not logged: %s", logs.String())
	}
}

func TestInitLoggerTagsApp(t *testing.T) {
	testlog.Start(t)
	var out bytes.Buffer
	logger := InitLogger(&out, "disctl")
	logger.Info().Msg("hello")
	if !strings.Contains(out.String(), "disctl") || !strings.Contains(out.String(), "hello") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
