package cli

import (
	"flag"
	"fmt"

	"github.com/dotplug/dotplug/pkg/plugins"
)

// newGetCommand creates the get command
func newGetCommand() *Command {
	cmd := &Command{
		Name:        "get",
		Description: "Show the plugin registered at an exact path",
		Flags:       flag.NewFlagSet("get", flag.ExitOnError),
	}

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if cmd.Flags.NArg() != 1 {
			return fmt.Errorf("usage: dotplug get <path>")
		}
		path := cmd.Flags.Arg(0)

		env, err := newEnvironment()
		if err != nil {
			return err
		}

		plugin, err := plugins.GetPlugin(env, path)
		if err != nil {
			return err
		}
		if plugin == nil {
			return fmt.Errorf("no plugin registered at %s", path)
		}

		fmt.Printf("Path:    %s\n", plugin.Path())
		fmt.Printf("Group:   %s\n", plugin.Group())
		fmt.Printf("Name:    %s\n", plugin.Name())
		fmt.Printf("Module:  %s\n", plugin.Module())
		fmt.Printf("Package: %s\n", plugin.Package())
		fmt.Printf("Version: %s\n", plugin.Version())
		if author, err := plugin.Author(); err == nil {
			fmt.Printf("Author:  %s\n", author)
		}
		return nil
	}

	return cmd
}
