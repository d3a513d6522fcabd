package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"devflow.ai/cli/internal/core/response"
)

// NewPluginsCommand creates the plugins command group.
func NewPluginsCommand(container *CLIContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "Inspect and manage registered plugins",
		Long: `Inspect the plugin registry: list registrations, show details for one
plugin, and toggle plugins on or off for the current process.

Registrations live in memory only; a fresh process starts from the
built-in set.`,
		Example: `  # List registered plugins
  devflow plugins list

  # Show one plugin's registration
  devflow plugins info memory

  # Disable a plugin for this process
  devflow plugins disable memory`,
	}

	cmd.AddCommand(newPluginsListCommand(container))
	cmd.AddCommand(newPluginsInfoCommand(container))
	cmd.AddCommand(newPluginsEnableCommand(container))
	cmd.AddCommand(newPluginsDisableCommand(container))

	return cmd
}

func newPluginsListCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List enabled plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			regs := container.Registry.ListDetailed()
			if len(regs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plugins enabled.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tPRIORITY\tTRIGGERS\tDESCRIPTION")
			for _, reg := range regs {
				d := reg.Descriptor
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					d.Name, d.Version, d.Priority, strings.Join(d.Triggers, ","), d.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d enabled / %d registered\n",
				container.Registry.EnabledCount(), container.Registry.Count())
			return nil
		},
	}
}

func newPluginsInfoCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show one plugin's registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, ok := container.Registry.Get(args[0])
			if !ok {
				return fmt.Errorf("plugin %q is not registered", args[0])
			}

			d := reg.Descriptor
			info := map[string]interface{}{
				"name":          d.Name,
				"version":       d.Version,
				"description":   d.Description,
				"author":        d.Author,
				"keywords":      d.Keywords,
				"triggers":      d.Triggers,
				"priority":      d.Priority,
				"enabled":       reg.Enabled,
				"registered_at": reg.RegisteredAt,
			}
			encoded, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode plugin info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
}

func newPluginsEnableCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <name>",
		Short: "Enable a disabled plugin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !container.Registry.SetEnabled(args[0], true) {
				return fmt.Errorf("plugin %q is not registered", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plugin %q enabled.\n", args[0])
			return nil
		},
	}
}

func newPluginsDisableCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <name>",
		Short: "Disable a plugin without unregistering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !container.Registry.SetEnabled(args[0], false) {
				return fmt.Errorf("plugin %q is not registered", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plugin %q disabled.\n", args[0])
			return nil
		},
	}
}

// marshalResponse encodes a Response as indented JSON for --json output.
func marshalResponse(resp *response.Response) (string, error) {
	encoded, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
