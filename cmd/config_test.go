package cmd

import (
	"reflect"
	"sort"
	"testing"

	"github.com/spf13/viper"

	"github.com/spigell/career-assistant/internal/documents"
)

func TestDecodeConfigDefaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	setDefaults(v)

	config, unused, err := decodeConfig(v.AllSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unused) != 0 {
		t.Fatalf("expected no unused keys, got %v", unused)
	}

	if !reflect.DeepEqual(config.Documents.Sources(), documents.DefaultSources()) {
		t.Fatalf("expected default sources, got %+v", config.Documents.Sources())
	}
	if config.Server.Addr != ":8080" || config.Log.MaxLength != 120 || config.Rules.FAQThreshold != 0.65 {
		t.Fatalf("unexpected defaults: %+v", config)
	}
}

func TestDecodeConfigOverrides(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"documents": map[string]any{
			"bio":    "/data/me.txt",
			"resume": "cv.pdf",
		},
		"server": map[string]any{"addr": "127.0.0.1:9000"},
		"log":    map[string]any{"max-length": "40"},
		"rules":  map[string]any{"disabled": "faq,retrieval"},
		"debug":  "true",
		"colour": "blue",
	}

	config, unused, err := decodeConfig(settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Documents.Bio != "/data/me.txt" || config.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected config: %+v", config)
	}
	if config.Log.MaxLength != 40 || !config.Debug {
		t.Fatalf("expected weakly typed values to decode, got %+v", config)
	}
	if !reflect.DeepEqual(config.Rules.Disabled, []string{"faq", "retrieval"}) {
		t.Fatalf("expected comma separated rules, got %v", config.Rules.Disabled)
	}

	sort.Strings(unused)
	if !reflect.DeepEqual(unused, []string{"colour", "documents.resume"}) {
		t.Fatalf("unexpected unused keys: %v", unused)
	}
}

func TestDecodeConfigInvalid(t *testing.T) {
	t.Parallel()

	if _, _, err := decodeConfig(map[string]any{"log": map[string]any{"max-length": "lots"}}); err == nil {
		t.Fatalf("expected an error for a non-numeric length")
	}
}
