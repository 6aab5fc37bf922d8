package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/goodtranslator/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goodtranslator [text]",
		Short: "Translate any text to English, cloud first with a local model fallback",
		Long: `goodtranslator translates text to English.

It asks a cloud translation service first. When that fails or returns
nothing, it detects the source language and translates with a local
seq2seq model (M2M100 by default) instead.

Examples:
  goodtranslator "Bonjour le monde"          # Translate one text
  goodtranslator --batch texts.txt           # Translate one text per line
  cat texts.txt | goodtranslator --batch -   # Read the batch from stdin
  goodtranslator --no-cloud "Guten Abend"    # Local model only
  goodtranslator --check                     # Check backend availability`,
		Args:         cobra.MaximumNArgs(1),
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.goodtranslator.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate texts from file (one per line, - for stdin)")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write batch results to file as 'text = translation'")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "Record batch results in a SQLite database")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "Check availability of the enabled backends and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List models served by the local model server")
	cmd.Flags().BoolVar(&flags.NoCloud, "no-cloud", false, "Disable the cloud backend")
	cmd.Flags().BoolVar(&flags.NoLocal, "no-local", false, "Disable the local model fallback")

	// Cloud flags
	cmd.Flags().StringVar(&flags.CloudProvider, "cloud-provider", flags.CloudProvider, "Cloud provider: google, gtranslate, gcp, gemini, libretranslate")
	cmd.Flags().StringVar(&flags.CloudURL, "cloud-url", "", "LibreTranslate URL for the libretranslate cloud provider")
	cmd.Flags().BoolVar(&flags.CloudBreaker, "cloud-breaker", false, "Fail fast on the cloud backend after repeated failures")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the gemini cloud provider")
	cmd.Flags().StringVar(&flags.GCPKey, "gcp-key", "", "Google Cloud Translation API key (default: GOOGLE_API_KEY or application default credentials)")

	// Local model flags
	cmd.Flags().StringVar(&flags.LocalEngine, "local-engine", flags.LocalEngine, "Local engine: m2m, openai, libretranslate")
	cmd.Flags().StringVar(&flags.LocalURL, "local-url", "", "Local model server URL")
	cmd.Flags().StringVar(&flags.LocalModel, "local-model", "", "Local model name (default: facebook/m2m100_418M for m2m)")
	cmd.Flags().StringVar(&flags.Detector, "detector", flags.Detector, "Language detector: lingua, whatlanggo")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.db", cmd.Flags().Lookup("db"))
	viper.BindPFlag("cloud.disabled", cmd.Flags().Lookup("no-cloud"))
	viper.BindPFlag("cloud.provider", cmd.Flags().Lookup("cloud-provider"))
	viper.BindPFlag("cloud.url", cmd.Flags().Lookup("cloud-url"))
	viper.BindPFlag("cloud.breaker", cmd.Flags().Lookup("cloud-breaker"))
	viper.BindPFlag("cloud.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("cloud.gcp_key", cmd.Flags().Lookup("gcp-key"))
	viper.BindPFlag("local.disabled", cmd.Flags().Lookup("no-local"))
	viper.BindPFlag("local.engine", cmd.Flags().Lookup("local-engine"))
	viper.BindPFlag("local.url", cmd.Flags().Lookup("local-url"))
	viper.BindPFlag("local.model", cmd.Flags().Lookup("local-model"))
	viper.BindPFlag("detect.classifier", cmd.Flags().Lookup("detector"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".goodtranslator" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".goodtranslator")
	}

	// Environment variables
	viper.SetEnvPrefix("GOODTRANSLATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetCloudAPIKey retrieves the API key for a cloud provider from
// environment or config
func GetCloudAPIKey(provider string) string {
	var envVar, configKey string
	switch provider {
	case "gemini":
		envVar, configKey = "GEMINI_API_KEY", "cloud.gemini_key"
	case "gcp":
		if key := viper.GetString("cloud.gcp_key"); key != "" {
			return key
		}
		envVar, configKey = "GOOGLE_API_KEY", "cloud.gcp_key"
	case "libretranslate":
		envVar, configKey = "LIBRETRANSLATE_API_KEY", "cloud.libretranslate_key"
	default:
		return ""
	}

	if key := os.Getenv(envVar); key != "" {
		return key
	}
	return viper.GetString(configKey)
}

// GetLocalAPIKey retrieves the key for the local model server, if it needs one
func GetLocalAPIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("local.api_key")
}
