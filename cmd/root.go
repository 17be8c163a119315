package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "hf-uploader"
)

// Config holds everything the uploader needs to talk to Huntflow. It is
// built once from the environment and passed down explicitly.
type Config struct {
	OrgID     string `mapstructure:"org-id"`
	BaseURL   string `mapstructure:"base-url"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token-file"`
}

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "hf-uploader is a simple cli for uploading a candidate roster from a spreadsheet to Huntflow",
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"org-id":     "ORG_ID",
		"base-url":   "URL",
		"token":      "TOKEN",
		"token-file": "HF_TOKEN_FILE",
	}

	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func getConfig() (*Config, error) {
	config := &Config{
		OrgID:     strings.TrimSpace(viper.GetString("org-id")),
		BaseURL:   strings.TrimSpace(viper.GetString("base-url")),
		Token:     viper.GetString("token"),
		TokenFile: viper.GetString("token-file"),
	}

	if config.OrgID == "" {
		return nil, errors.New("organization id is not configured, set the ORG_ID environment variable")
	}

	if config.BaseURL == "" {
		return nil, errors.New("api base url is not configured, set the URL environment variable")
	}

	return config, nil
}
