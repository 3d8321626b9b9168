package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"greg-hacke/stripclean/config"
	"greg-hacke/stripclean/logging"
)

type commandContext struct {
	configFlag *string

	once   sync.Once
	config *config.Config
	logger *zap.Logger
	err    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensure loads the configuration and builds the logger once
func (c *commandContext) ensure() (*config.Config, *zap.Logger, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, used, err := config.LoadFile(path)
		if err != nil {
			c.err = err
			return
		}
		logger, err := logging.New(cfg.Log)
		if err != nil {
			c.err = err
			return
		}
		if used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.logger, c.err
}

func newRootCommand() *cobra.Command {
	var configFlag string
	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "stripclean",
		Short:         "Find and remove privacy-sensitive image metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := ctx.ensure()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default ./stripclean.toml)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newCleanCommand(ctx))
	rootCmd.AddCommand(newTagsCommand())

	return rootCmd
}
