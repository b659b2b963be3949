package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

func SetDefaults() {
	viper.SetDefault("style", "fade")
	viper.SetDefault("duration", 1.0)
	viper.SetDefault("direction", 0)
	viper.SetDefault("motion", "inward")
	viper.SetDefault("easing", "linear")
	viper.SetDefault("scale_mode", "stretched")
	viper.SetDefault("framerate_limit", 30)
	viper.SetDefault("seed", 0)
	viper.SetDefault("debug", false)
}

// InitConfig reads the config file. A missing file is not an error; the
// defaults apply.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pagefx")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/pagefx")
		viper.AddConfigPath("/etc/xdg/pagefx")
	}

	SetDefaults()

	viper.SetEnvPrefix("pagefx")
	viper.AutomaticEnv() // read environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			log.Fatalf("Error reading config: %v", err)
		}
		log.Debug("No config file found, using defaults")
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}
