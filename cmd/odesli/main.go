// Package main provides the odesli CLI application entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"odesli/internal/core"
	"odesli/internal/i18n"
	"odesli/internal/transport"
	"odesli/pkg/odesli"
)

const envPrefix = "ODESLI"

var (
	cfgFile   string
	configErr error
	config    *core.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "odesli",
	Short: "odesli - cross-platform music links from song.link",
	Long: `odesli looks up a song or album on Odesli (song.link) by streaming URL or by
platform-specific ID and prints the matching links on every other platform.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: validateConfig,
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := core.DefaultConfig()
	supportedLangs := strings.Join(i18n.GetSupportedLanguages(), ", ")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Odesli API key (unauthenticated requests are rate limited)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Print the raw JSON result instead of a summary")
	rootCmd.PersistentFlags().String("api-version", defaults.Odesli.APIVersion, "Odesli API version")
	rootCmd.PersistentFlags().String("base-url", defaults.Odesli.BaseURL, "Odesli API base URL")
	rootCmd.PersistentFlags().String("user-country", "", "ISO 3166-1 country used to resolve availability (API default: US)")
	rootCmd.PersistentFlags().Bool("song-if-single", false, "Return the song instead of the album for singles")
	rootCmd.PersistentFlags().Duration("timeout", defaults.Odesli.Timeout, "Timeout for Odesli API requests (0 disables)")
	rootCmd.PersistentFlags().String("language", i18n.DefaultLanguage, fmt.Sprintf("Output language (%s)", supportedLangs))
	rootCmd.PersistentFlags().String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", defaults.Log.Format, "log format (json, text)")
	rootCmd.PersistentFlags().String("server-host", defaults.Server.Host, "HTTP server host for serve")
	rootCmd.PersistentFlags().Int("server-port", defaults.Server.Port, "HTTP server port for serve")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		newGetURLCmd(),
		newGetIDCmd(),
		newPlatformsCmd(),
		newCompletionsCmd(),
		newServeCmd(),
		newEnvExampleCmd(),
	)
}

func initConfig() {
	// Load .env file explicitly using gotenv
	envFile := ".env"
	if cfgFile != "" {
		envFile = cfgFile
	}

	configErr = nil
	if err := gotenv.Load(envFile); err != nil {
		switch {
		case cfgFile != "":
			configErr = fmt.Errorf("failed to load config file %s: %w", envFile, err)
		case !os.IsNotExist(err):
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", envFile, err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	config = buildConfig()
	logger = buildLogger(config.Log)
}

func buildConfig() *core.Config {
	cfg := core.DefaultConfig()

	configureOdesli(cfg)
	configureServer(cfg)
	configureLogging(cfg)
	configureOutput(cfg)

	return cfg
}

func configureOdesli(cfg *core.Config) {
	cfg.Odesli.APIKey = viper.GetString("api-key")
	cfg.Odesli.APIVersion = viper.GetString("api-version")
	cfg.Odesli.BaseURL = viper.GetString("base-url")
	cfg.Odesli.UserCountry = viper.GetString("user-country")
	cfg.Odesli.SongIfSingle = viper.GetBool("song-if-single")
	cfg.Odesli.Timeout = viper.GetDuration("timeout")
}

func configureServer(cfg *core.Config) {
	cfg.Server.Host = viper.GetString("server-host")
	if cfg.Server.Host == "" {
		cfg.Server.Host = core.DefaultServerHost
	}
	cfg.Server.Port = viper.GetInt("server-port")
}

func configureLogging(cfg *core.Config) {
	cfg.Log.Level = viper.GetString("log-level")
	cfg.Log.Format = viper.GetString("log-format")
}

func configureOutput(cfg *core.Config) {
	cfg.Output.JSON = viper.GetBool("json")

	cfg.Output.Language = viper.GetString("language")
	if cfg.Output.Language == "" {
		cfg.Output.Language = i18n.DefaultLanguage
	}
	if !i18n.IsSupported(cfg.Output.Language) {
		fmt.Fprintf(os.Stderr, "Warning: Unsupported language '%s', falling back to '%s'. Supported languages: %s\n",
			cfg.Output.Language, i18n.DefaultLanguage, strings.Join(i18n.GetSupportedLanguages(), ", "))
		cfg.Output.Language = i18n.DefaultLanguage
	}
}

func validateConfig(_ *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// buildLogger writes to stderr so stdout carries only results.
func buildLogger(logConfig core.LogConfig) *zap.Logger {
	var zapLevel zapcore.Level
	switch strings.ToLower(logConfig.Level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if strings.EqualFold(logConfig.Format, "text") {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	builtLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return builtLogger
}

// newOdesliClient builds the client from the current configuration with
// request logging. observer may be nil.
func newOdesliClient(observer transport.Observer) (*odesli.Client, error) {
	rt := transport.New(nil, logger.Named("odesli"), observer)
	return core.NewClient(&config.Odesli, rt)
}
