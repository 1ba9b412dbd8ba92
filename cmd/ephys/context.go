package main

import (
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/viant/ephys/internal/config"
	"github.com/viant/ephys/internal/logger"
	"github.com/viant/ephys/recording"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	fs afs.Service
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		fs:           afs.New(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		defaults := config.Default()
		return &defaults
	}
	return cfg
}

func (c *commandContext) logger(output io.Writer, component string) zerolog.Logger {
	cfg := c.configValue()
	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     output,
		WithCaller: cfg.Logging.Level == "debug",
	})
	return logger.Component(log, component)
}

// descriptorOptions returns recording options wired to the command's configuration and stderr logger
func (c *commandContext) descriptorOptions(cmd *cobra.Command) []recording.Option {
	return []recording.Option{
		recording.WithFS(c.fs),
		recording.WithLogger(c.logger(cmd.ErrOrStderr(), "recording")),
		recording.WithEagerLoad(c.configValue().Load.Eager),
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
