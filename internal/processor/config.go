package processor

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"codeberg.org/snonux/goodtranslator/internal/cli"
	"codeberg.org/snonux/goodtranslator/internal/cloud"
	"codeberg.org/snonux/goodtranslator/internal/detect"
	"codeberg.org/snonux/goodtranslator/internal/local"
	"codeberg.org/snonux/goodtranslator/internal/translation"
)

// TranslationConfig builds the translator configuration from flags,
// letting config file and environment values override flag defaults
func TranslationConfig(flags *cli.Flags, logger *logrus.Logger) *translation.Config {
	config := translation.DefaultConfig()
	config.Logger = logger
	config.UseCloud = !(flags.NoCloud || viper.GetBool("cloud.disabled"))
	config.UseLocal = !(flags.NoLocal || viper.GetBool("local.disabled"))

	provider := stringSetting("cloud.provider", flags.CloudProvider)
	config.Cloud = &cloud.Config{
		Provider:        provider,
		APIKey:          cloudAPIKey(provider, flags),
		BaseURL:         stringSetting("cloud.url", flags.CloudURL),
		GeminiModel:     stringSetting("cloud.gemini_model", flags.GeminiModel),
		Breaker:         flags.CloudBreaker || viper.GetBool("cloud.breaker"),
		BreakerFailures: config.Cloud.BreakerFailures,
		BreakerTimeout:  config.Cloud.BreakerTimeout,
	}
	if viper.IsSet("cloud.breaker_failures") {
		config.Cloud.BreakerFailures = viper.GetUint32("cloud.breaker_failures")
	}
	if viper.IsSet("cloud.breaker_timeout") {
		config.Cloud.BreakerTimeout = viper.GetDuration("cloud.breaker_timeout")
	}

	config.Local = &local.Config{
		Engine:  stringSetting("local.engine", flags.LocalEngine),
		BaseURL: stringSetting("local.url", flags.LocalURL),
		Model:   stringSetting("local.model", flags.LocalModel),
		APIKey:  cli.GetLocalAPIKey(),
	}

	config.Detect = &detect.Config{
		Classifier: stringSetting("detect.classifier", flags.Detector),
		Languages:  viper.GetStringSlice("detect.languages"),
	}

	return config
}

func cloudAPIKey(provider string, flags *cli.Flags) string {
	if provider == "gcp" && flags.GCPKey != "" {
		return flags.GCPKey
	}
	return cli.GetCloudAPIKey(provider)
}

func stringSetting(key, flagValue string) string {
	if v := viper.GetString(key); v != "" && viper.IsSet(key) {
		return v
	}
	return flagValue
}
