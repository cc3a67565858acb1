package config

import (
	"os"
	"ridethebus-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Ride the Bus server
type Config struct {
	loaded      bool
	ListenAddr  string `yaml:"listenAddr" envconfig:"listen_addr"`
	BalanceFile string `yaml:"balanceFile" envconfig:"balance_file"`
	Log         struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
		DefaultBet      int `yaml:"defaultBet" envconfig:"default_bet"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional; environment variables always win.
func Load() error {
	config = Config{
		ListenAddr:  ":5000",
		BalanceFile: "gamedata/balance.txt",
	}
	config.Game.StartingBalance = 100
	config.Game.DefaultBet = 10

	configFile := util.Getenv("RTB_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("rtb", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
