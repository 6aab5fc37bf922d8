package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/goodtranslator/internal/cli"
	"codeberg.org/snonux/goodtranslator/internal/processor"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := newRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(flags *cli.Flags) *cobra.Command {
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}
	return rootCmd
}

func newLogger(level string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	return logger, nil
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := cmd.Context()

	level := flags.LogLevel
	if viper.IsSet("log.level") {
		level = viper.GetString("log.level")
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}

	// Handle --list-models flag
	if flags.ListModels {
		return processor.ListModels(ctx, flags, os.Stdout)
	}

	if flags.BatchFile == "" && len(args) == 0 && !flags.Check {
		return cmd.Help()
	}

	// Create processor
	proc, err := processor.NewProcessor(ctx, flags, logger)
	if err != nil {
		return err
	}
	defer proc.Close()

	// Handle --check flag
	if flags.Check {
		return proc.CheckBackends(ctx)
	}

	if flags.BatchFile != "" {
		// Process batch file
		return proc.ProcessBatch(ctx)
	}

	// Process single text
	return proc.ProcessSingleText(ctx, args[0])
}
