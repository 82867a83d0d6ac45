// Config loading for the setcalc CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyUniverse = "universe"
	cfgKeyOutput   = "output"

	// Output modes.
	outputText = "text"
	outputJSON = "json"
)

// loadConfig reads config.yaml from the given directory using Viper.
// A missing config file is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyUniverse, defaultUniverse)
	v.SetDefault(cfgKeyOutput, outputText)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
