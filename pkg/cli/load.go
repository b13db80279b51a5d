package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/dotplug/dotplug/pkg/plugins"
)

// newLoadCommand creates the load command
func newLoadCommand() *Command {
	cmd := &Command{
		Name:        "load",
		Description: "Load the plugin at a path and print its result",
		Flags:       flag.NewFlagSet("load", flag.ExitOnError),
	}

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if cmd.Flags.NArg() < 1 {
			return fmt.Errorf("usage: dotplug load <path> [input]")
		}
		path := cmd.Flags.Arg(0)

		env, err := newEnvironment()
		if err != nil {
			return err
		}

		var loadArgs []any
		for _, arg := range cmd.Flags.Args()[1:] {
			loadArgs = append(loadArgs, arg)
		}

		result, err := plugins.LoadPlugin(context.Background(), env, path, loadArgs...)
		if err != nil {
			return err
		}

		switch v := result.(type) {
		case nil:
		case []byte:
			fmt.Println(string(v))
		case string:
			fmt.Println(v)
		default:
			fmt.Printf("%v\n", v)
		}
		return nil
	}

	return cmd
}
