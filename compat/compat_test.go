package compat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varkala/alog"
)

// capturedRecord is one delivery observed through the default sink
type capturedRecord struct {
	prio alog.Priority
	tag  string
	msg  string
}

// installCaptureSink routes the process default sink into a slice for the
// duration of the test
func installCaptureSink(t *testing.T) *[]capturedRecord {
	t.Helper()

	prev := alog.DefaultSink()
	records := &[]capturedRecord{}
	err := alog.SetDefaultSink(func(prio alog.Priority, tag, msg []byte) int32 {
		*records = append(*records, capturedRecord{
			prio: prio,
			tag:  string(trimNUL(tag)),
			msg:  string(trimNUL(msg)),
		})
		return 0
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = alog.SetDefaultSink(prev) })

	return records
}

func trimNUL(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// TestGnetAdapter tests the gnet adapter's priorities and record content
func TestGnetAdapter(t *testing.T) {
	records := installCaptureSink(t)

	fatalCalled := false
	adapter := NewGnetAdapter(
		WithGnetTag("EchoSrv"),
		WithFatalHandler(func(msg string) { fatalCalled = true }),
	)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	require.Len(t, *records, 5)
	expected := []struct {
		prio alog.Priority
		msg  string
	}{
		{alog.PriorityDebug, "gnet debug id=1"},
		{alog.PriorityInfo, "gnet info id=2"},
		{alog.PriorityWarn, "gnet warn id=3"},
		{alog.PriorityError, "gnet error id=4"},
		{alog.PriorityFatal, "gnet fatal id=5"},
	}

	for i, want := range expected {
		got := (*records)[i]
		assert.Equal(t, want.prio, got.prio, "record %d", i)
		assert.Equal(t, want.msg, got.msg, "record %d", i)
		assert.Equal(t, "EchoSrv", got.tag, "record %d", i)
	}

	assert.True(t, fatalCalled, "fatal handler should run after delivery")
}

func TestGnetAdapterDefaultTag(t *testing.T) {
	records := installCaptureSink(t)

	NewGnetAdapter(WithFatalHandler(func(string) {})).Infof("hello")

	require.Len(t, *records, 1)
	assert.Equal(t, "gnet", (*records)[0].tag)
}

// TestFastHTTPAdapter tests Printf delivery with priority detection
func TestFastHTTPAdapter(t *testing.T) {
	records := installCaptureSink(t)

	adapter := NewFastHTTPAdapter(WithFastHTTPTag("HTTPSrv"))

	adapter.Printf("serving on %s", ":8080")
	adapter.Printf("error when serving connection %s", "10.0.0.7")
	adapter.Printf("connection is in deprecated state")

	require.Len(t, *records, 3)
	assert.Equal(t, alog.PriorityInfo, (*records)[0].prio)
	assert.Equal(t, alog.PriorityError, (*records)[1].prio)
	assert.Equal(t, alog.PriorityWarn, (*records)[2].prio)

	for _, r := range *records {
		assert.Equal(t, "HTTPSrv", r.tag)
	}
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	records := installCaptureSink(t)

	adapter := NewFastHTTPAdapter(
		WithDefaultPriority(alog.PriorityVerbose),
		WithPriorityDetector(func(string) alog.Priority { return alog.PriorityUnknown }),
	)
	adapter.Printf("plain message")

	require.Len(t, *records, 1)
	assert.Equal(t, alog.PriorityVerbose, (*records)[0].prio)
	assert.Equal(t, "fasthttp", (*records)[0].tag)
}

func TestDetectPriority(t *testing.T) {
	tests := []struct {
		msg  string
		want alog.Priority
	}{
		{"request failed", alog.PriorityError},
		{"PANIC recovered", alog.PriorityError},
		{"warning: slow handler", alog.PriorityWarn},
		{"deprecated option used", alog.PriorityWarn},
		{"debug: connection state", alog.PriorityDebug},
		{"trace output", alog.PriorityDebug},
		{"listening on :8080", alog.PriorityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPriority(tt.msg))
		})
	}
}

// TestBuilder tests adapter construction from configuration
func TestBuilder(t *testing.T) {
	records := installCaptureSink(t)

	cfg := alog.DefaultConfig()
	cfg.Tag = "Svc"
	cfg.Priority = "warn"

	gnetAdapter, err := NewBuilder().WithConfig(cfg).BuildGnet(WithFatalHandler(func(string) {}))
	require.NoError(t, err)
	require.NotNil(t, gnetAdapter)

	fasthttpAdapter, err := NewBuilder().WithConfig(cfg).BuildFastHTTP()
	require.NoError(t, err)
	require.NotNil(t, fasthttpAdapter)

	gnetAdapter.Infof("from gnet")
	fasthttpAdapter.Printf("plain line")

	require.Len(t, *records, 2)
	assert.Equal(t, "Svc", (*records)[0].tag)
	assert.Equal(t, "Svc", (*records)[1].tag)
	// Undetectable message falls back to the configured priority
	assert.Equal(t, alog.PriorityWarn, (*records)[1].prio)
}

func TestBuilderErrors(t *testing.T) {
	_, err := NewBuilder().WithConfig(nil).BuildGnet()
	require.Error(t, err)

	bad := alog.DefaultConfig()
	bad.Priority = "loud"
	_, err = NewBuilder().WithConfig(bad).BuildFastHTTP()
	require.Error(t, err)
}
