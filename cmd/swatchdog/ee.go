package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/swatchdog/swatchdog/app"
	"github.com/swatchdog/swatchdog/config"
)

// tokenEnv is read when --ee-token is not given.
const tokenEnv = "OCP_CONSOLE_TOKEN"

var eeCmd = &cobra.Command{
	Use:   "ee",
	Short: "Work with an ephemeral environment",
	Long: `Commands that act on an ephemeral OpenShift environment.

The session token is taken from --ee-token, then $OCP_CONSOLE_TOKEN, then
"oc whoami -t". The token cached in the state file is used only when oc has no
session. The token in use is written back to the state file.`,
}

func init() {
	eeCmd.PersistentFlags().String("ee-token", "", "Session token for the ephemeral environment (default $"+tokenEnv+")")
	eeCmd.PersistentFlags().String("config", "", "Directory holding swatchdog.toml")
	eeCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(eeCmd)
}

func appOptionsFromFlags(cmd *cobra.Command) app.Options {
	token, _ := cmd.Flags().GetString("ee-token")
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	configDir, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return app.Options{
		ConfigDir: configDir,
		LogLevel:  logLevel,
		Token:     config.SecretValue(token),
	}
}
