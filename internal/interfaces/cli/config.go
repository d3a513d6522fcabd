package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and update DevFlow configuration",
	}

	cmd.AddCommand(newConfigShowCommand(container))
	cmd.AddCommand(newConfigSetCommand(container))

	return cmd
}

func newConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := container.Config
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file:     %s\n", container.ConfigRepo.Path())
			fmt.Fprintf(out, "API URL:         %s\n", cfg.APIURL)
			fmt.Fprintf(out, "Auth token:      %s\n", maskToken(cfg.AuthToken))
			fmt.Fprintf(out, "User ID:         %s\n", orUnset(cfg.UserID))
			fmt.Fprintf(out, "Request timeout: %s\n", cfg.RequestTimeout)
			fmt.Fprintf(out, "Debug:           %v\n", cfg.Debug)
			return nil
		},
	}
}

func newConfigSetCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value and persist it",
		Long: `Set a configuration value and write it to the config file.

Keys: api_url, auth_token, user_id, request_timeout (e.g. 30s), debug.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			cfg := container.Config

			switch key {
			case "api_url":
				cfg.APIURL = value
			case "auth_token":
				cfg.AuthToken = value
			case "user_id":
				cfg.UserID = value
			case "request_timeout":
				d, err := time.ParseDuration(value)
				if err != nil {
					return fmt.Errorf("invalid duration %q: %w", value, err)
				}
				cfg.RequestTimeout = d
			case "debug":
				cfg.Debug = value == "true" || value == "1"
			default:
				return fmt.Errorf("unknown config key %q", key)
			}

			if err := container.ConfigRepo.Save(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", key, container.ConfigRepo.Path())
			return nil
		},
	}
}

func maskToken(token string) string {
	if token == "" {
		return "(unset)"
	}
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}
