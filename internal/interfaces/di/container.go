// Package di wires the application together: configuration, logging, the
// memory service client, the plugin registry with its built-in plugins, the
// intent router, and the CLI container.
package di

import (
	"fmt"
	"io"
	"log"
	"os"

	"devflow.ai/cli/internal/core/intent"
	"devflow.ai/cli/internal/core/registry"
	"devflow.ai/cli/internal/infrastructure/config"
	"devflow.ai/cli/internal/infrastructure/memoryapi"
	"devflow.ai/cli/internal/interfaces/cli"
	"devflow.ai/cli/internal/plugins/memory"
)

// Container holds all application dependencies.
type Container struct {
	Config       *config.Config
	ConfigRepo   *config.Repository
	MemoryClient *memoryapi.Client
	Registry     *registry.Registry
	Router       *intent.Router
	CLIContainer *cli.CLIContainer
	Logger       *log.Logger
}

// NewContainer creates and wires the dependency container.
func NewContainer() (*Container, error) {
	c := &Container{}
	if err := c.initializeComponents(); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}
	return c, nil
}

// initializeComponents builds every component in dependency order.
func (c *Container) initializeComponents() error {
	// 1. Configuration
	c.ConfigRepo = config.NewRepository()
	cfg, err := c.ConfigRepo.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c.Config = cfg

	// 2. Logging: diagnostics go to stderr only in debug mode so routed
	// output stays clean.
	var sink io.Writer = io.Discard
	if cfg.Debug {
		sink = os.Stderr
	}
	c.Logger = log.New(sink, "[devflow] ", log.LstdFlags)

	// 3. Memory service client
	c.MemoryClient = memoryapi.NewClient(
		cfg.APIURL,
		cfg.AuthToken,
		cfg.UserID,
		memoryapi.WithTimeout(cfg.RequestTimeout),
	)

	// 4. Plugin registry with the built-in plugin set
	c.Registry = registry.NewRegistry(c.Logger)
	if !c.Registry.Register(memory.Descriptor(c.MemoryClient)) {
		return fmt.Errorf("failed to register memory plugin")
	}

	// 5. Intent router
	c.Router = intent.NewRouter(c.Registry, c.Logger)

	// 6. CLI container
	c.CLIContainer = &cli.CLIContainer{
		Router:     c.Router,
		Registry:   c.Registry,
		Config:     c.Config,
		ConfigRepo: c.ConfigRepo,
		Logger:     c.Logger,
	}

	return nil
}
