package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  section  ", Value: "  Bio  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "section" || fields[0].String != "Bio" {
		t.Fatalf("unexpected section field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestReplyFields(t *testing.T) {
	fields := ReplyFields("retrieval", "Projects")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldRule || fields[0].String != "retrieval" {
		t.Fatalf("unexpected rule field: %+v", fields[0])
	}

	if fields[1].Key != FieldSection || fields[1].String != "Projects" {
		t.Fatalf("unexpected section field: %+v", fields[1])
	}

	// Rules without a section only log the rule.
	if got := ReplyFields("greeting", ""); len(got) != 1 {
		t.Fatalf("expected 1 field, got %d", len(got))
	}
}

func TestForRequest(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	ForRequest(zap.New(core), "http", "req-1").Debug("reply ready", MessageField("  hello there  ", 5))

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldTransport] != "http" || ctx[FieldRequestID] != "req-1" {
		t.Fatalf("unexpected request fields: %v", ctx)
	}
	if ctx["message"] != "hello..." {
		t.Fatalf("expected truncated message, got %q", ctx["message"])
	}

	ForRequest(nil, "cli", "").Info("fallback does not panic")
}
