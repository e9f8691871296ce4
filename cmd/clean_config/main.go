// Command clean_config resets the orders API endpoint in ~/.avoterm.yaml to
// the built-in default, for machines left pointing at a local mock.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/avolabs/avoterm/internal/config"
)

func main() {
	configPath, err := config.Path()
	if err != nil {
		fmt.Printf("Error locating config: %v\n", err)
		os.Exit(1)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("Nothing to clean: %v\n", err)
		return
	}
	viper.Set("api_base_url", config.DefaultAPIBaseURL)
	viper.Set("chain", config.DefaultChain)

	if err := viper.WriteConfig(); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Reset api_base_url and chain in %s\n", configPath)
}
