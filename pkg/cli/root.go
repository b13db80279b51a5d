package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dotplug/dotplug/pkg/config"
	"github.com/dotplug/dotplug/pkg/loaders"
	"github.com/dotplug/dotplug/pkg/loaders/wasm"
	"github.com/dotplug/dotplug/pkg/manifest"
)

// Command represents a CLI command
type Command struct {
	Name        string
	Description string
	Run         func(args []string) error
	Subcommands map[string]*Command
	Flags       *flag.FlagSet
}

// NewRootCommand creates the root command
func NewRootCommand() *Command {
	root := &Command{
		Name:        "dotplug",
		Description: "dotplug - Dotted-path Plugin Discovery CLI",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("dotplug", flag.ExitOnError),
	}

	// Add subcommands
	root.Subcommands["groups"] = newGroupsCommand()
	root.Subcommands["get"] = newGetCommand()
	root.Subcommands["find"] = newFindCommand()
	root.Subcommands["load"] = newLoadCommand()

	return root
}

// Execute runs the command
func (c *Command) Execute() error {
	args := os.Args[1:]
	if len(args) == 0 {
		return c.usage()
	}

	// Check for help flag
	if args[0] == "-h" || args[0] == "--help" {
		return c.usage()
	}

	// Check for subcommand
	if subcmd, ok := c.Subcommands[args[0]]; ok {
		return subcmd.Run(args[1:])
	}

	return fmt.Errorf("unknown command: %s", args[0])
}

// usage prints the command usage
func (c *Command) usage() error {
	fmt.Printf("Usage: %s <command> [args]\n\n", c.Name)
	fmt.Printf("Commands:\n")
	for name, cmd := range c.Subcommands {
		fmt.Printf("  %-15s %s\n", name, cmd.Description)
	}
	return nil
}

// newEnvironment builds the manifest environment from the process
// configuration and runs an initial discovery pass.
func newEnvironment() (*manifest.Environment, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(cfg.ParsedLogLevel())

	var loader loaders.Loader = loaders.SymbolTable{}
	if cfg.WASMEnabled {
		loader = wasm.NewLoader(log)
	}

	env := manifest.NewEnvironment(cfg.PluginDirs, loader, log)
	if err := env.Discover(); err != nil {
		return nil, fmt.Errorf("plugin discovery failed: %w", err)
	}

	return env, nil
}
