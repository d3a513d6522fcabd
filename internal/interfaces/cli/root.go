package cli

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"devflow.ai/cli/internal/core/intent"
	"devflow.ai/cli/internal/core/registry"
	"devflow.ai/cli/internal/infrastructure/config"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds the dependencies CLI commands need.
type CLIContainer struct {
	Router     *intent.Router
	Registry   *registry.Registry
	Config     *config.Config
	ConfigRepo *config.Repository
	Logger     *log.Logger
}

// NewRootCommand builds the base command for the devflow binary.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devflow",
		Short: "DevFlow CLI - Intent routing for developer workflows",
		Long: `DevFlow CLI routes free-text requests to the right handler: built-in
intents for help, code snippets, memories, campaigns, content and trends,
plus dynamically registered plugins such as the memory service adapter.

Ask it things in plain language; it classifies the request, picks exactly
one handler, and renders the result.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewAskCommand(container))
	rootCmd.AddCommand(NewChatCommand(container))
	rootCmd.AddCommand(NewPluginsCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute(container *CLIContainer) {
	if err := NewRootCommand(container).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
