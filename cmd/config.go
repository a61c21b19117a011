package cmd

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/career-assistant/internal/documents"
	"github.com/spigell/career-assistant/internal/faq"
	"github.com/spigell/career-assistant/internal/logger"
	"github.com/spigell/career-assistant/internal/server"
)

type Config struct {
	Documents DocumentsConfig `mapstructure:"documents"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Rules     RulesConfig     `mapstructure:"rules"`
	Debug     bool            `mapstructure:"debug"`
	JSON      bool            `mapstructure:"json"`
}

// DocumentsConfig holds the file path of every section.
type DocumentsConfig struct {
	Bio      string `mapstructure:"bio"`
	Projects string `mapstructure:"projects"`
	Goals    string `mapstructure:"goals"`
	LinkedIn string `mapstructure:"linkedin"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	MaxLength int `mapstructure:"max-length"`
}

type RulesConfig struct {
	Disabled     []string `mapstructure:"disabled"`
	FAQThreshold float64  `mapstructure:"faq-threshold"`
}

// Sources returns the document sources in corpus order.
func (c DocumentsConfig) Sources() []documents.Source {
	return []documents.Source{
		{Section: documents.SectionBio, Path: c.Bio},
		{Section: documents.SectionProjects, Path: c.Projects},
		{Section: documents.SectionGoals, Path: c.Goals},
		{Section: documents.SectionLinkedIn, Path: c.LinkedIn},
	}
}

// setDefaults registers every key so that environment overrides are visible
// in AllSettings.
func setDefaults(v *viper.Viper) {
	for _, src := range documents.DefaultSources() {
		v.SetDefault("documents."+strings.ToLower(string(src.Section)), src.Path)
	}
	v.SetDefault("server.addr", server.DefaultAddr)
	v.SetDefault("log.max-length", logger.DefaultMaxLength)
	v.SetDefault("rules.disabled", []string{})
	v.SetDefault("rules.faq-threshold", faq.DefaultThreshold)
}

// getConfig decodes the merged settings and reports keys nothing consumed.
func getConfig() (*Config, []string, error) {
	return decodeConfig(viper.AllSettings())
}

func decodeConfig(settings map[string]any) (*Config, []string, error) {
	var (
		config   Config
		metadata mapstructure.Metadata
	)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &metadata,
		Result:           &config,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating config decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, nil, fmt.Errorf("decoding config: %w", err)
	}

	return &config, metadata.Unused, nil
}
