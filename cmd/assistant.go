package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/documents"
	"github.com/spigell/career-assistant/internal/logger"
	"github.com/spigell/career-assistant/internal/responder"
)

func newLogger() *zap.Logger {
	l, err := logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// bootstrap loads the configuration and documents once and builds the
// assistant shared by every front-end. Failures are fatal.
func bootstrap() (*zap.Logger, *Config, *responder.Assistant) {
	logger := newLogger()

	config, unused, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	for _, key := range unused {
		logger.Warn("unknown configuration key ignored", zap.String("key", key))
	}

	// do not bother error since the config was decoded from plain values
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	store := documents.NewStore(config.Documents.Sources(), logger)

	assistant, err := responder.New(store, responder.Config{
		FAQThreshold: config.Rules.FAQThreshold,
		Disabled:     config.Rules.Disabled,
		MaxLogLength: config.Log.MaxLength,
	}, logger)
	if err != nil {
		logger.Fatal("building the assistant", zap.Error(err))
	}

	logger.Debug("assistant is ready", zap.Int("sections", store.Len()))

	return logger, config, assistant
}
