package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAskCommand creates the ask command: route a single query and print the
// rendered Response.
func NewAskCommand(container *CLIContainer) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Route a free-text request to the best handler",
		Long: `Route a free-text request through the intent router: built-in
classifiers first, then registered plugins, then the generic fallback.

Examples:
  devflow ask show me a retry snippet
  devflow ask remember that the deploy key rotates monthly
  devflow ask plan a launch campaign`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			resp := container.Router.Route(cmd.Context(), query, nil)
			if asJSON {
				encoded, err := marshalResponse(resp)
				if err != nil {
					return fmt.Errorf("failed to encode response: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), encoded)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), RenderResponse(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response as JSON")

	return cmd
}
