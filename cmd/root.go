// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smokeytempo/timelinegen/internal/gateway"
)

var rootCmd = &cobra.Command{
	Use:   "timelinegen",
	Short: "Visualize when a GitHub user created their public repositories.",
	Long: `timelinegen fetches a GitHub user's public repositories, lists them
oldest first with a language filter, and charts how many were created per year.
Use "serve" for the web page or "show" for terminal output.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/timelinegen/config.yaml)")
	rootCmd.PersistentFlags().String("api-base-url", gateway.DefaultBaseURL, "GitHub REST API base URL")
	_ = viper.BindPFlag("api_base_url", rootCmd.PersistentFlags().Lookup("api-base-url"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "timelinegen"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("TIMELINEGEN")
	viper.AutomaticEnv()

	viper.SetDefault("api_base_url", gateway.DefaultBaseURL)
	viper.SetDefault("port", 8080)

	// The config file is optional.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && viper.ConfigFileUsed() != "" {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config %s: %v\n", viper.ConfigFileUsed(), err)
		}
	}
}

// newLogger discards everything unless --verbose is set, in which case it logs to standard error.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// newGateway builds the GitHub gateway from configuration.
func newGateway(logger *log.Logger) (*gateway.GitHubGateway, error) {
	githubGateway, err := gateway.NewGitHubGateway(viper.GetString("api_base_url"), nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return githubGateway, nil
}
