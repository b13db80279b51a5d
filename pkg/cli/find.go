package cli

import (
	"flag"
	"fmt"

	"github.com/dotplug/dotplug/pkg/plugins"
)

// newFindCommand creates the find command
func newFindCommand() *Command {
	cmd := &Command{
		Name:        "find",
		Description: "List plugins matching a wildcard pattern",
		Flags:       flag.NewFlagSet("find", flag.ExitOnError),
	}

	all := cmd.Flags.Bool("all", false, "search every installed package instead of the pattern's package")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if cmd.Flags.NArg() != 1 {
			return fmt.Errorf("usage: dotplug find [-all] <pattern>")
		}
		pattern := cmd.Flags.Arg(0)

		env, err := newEnvironment()
		if err != nil {
			return err
		}

		var matches []*plugins.Plugin
		if *all {
			matches = plugins.Search(env, pattern)
		} else {
			matches, err = plugins.FindPlugins(env, pattern)
			if err != nil {
				return err
			}
		}

		for _, plugin := range matches {
			fmt.Printf("%s\t%s\n", plugin.Path(), plugin.Module())
		}
		return nil
	}

	return cmd
}
