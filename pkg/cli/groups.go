package cli

import (
	"flag"
	"fmt"

	"github.com/dotplug/dotplug/pkg/plugins"
)

// newGroupsCommand creates the groups command
func newGroupsCommand() *Command {
	cmd := &Command{
		Name:        "groups",
		Description: "List the plugin groups registered for a package",
		Flags:       flag.NewFlagSet("groups", flag.ExitOnError),
	}

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if cmd.Flags.NArg() != 1 {
			return fmt.Errorf("usage: dotplug groups <package>")
		}

		env, err := newEnvironment()
		if err != nil {
			return err
		}

		registry, err := plugins.New(env, cmd.Flags.Arg(0))
		if err != nil {
			return err
		}

		for _, group := range registry.Groups() {
			fmt.Println(group)
		}
		return nil
	}

	return cmd
}
