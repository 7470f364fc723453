package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/rofi-keys/internal/logging"
	"github.com/lvim-tech/rofi-keys/pkg/config"
	"github.com/lvim-tech/rofi-keys/pkg/executor"
	"github.com/lvim-tech/rofi-keys/pkg/launcher"
	"github.com/lvim-tech/rofi-keys/pkg/menu"
	"github.com/lvim-tech/rofi-keys/pkg/utils"
)

var version = "0.1.0"

var (
	newLauncher = launcher.New
	detach      = executor.Detach
	await       = executor.Await
)

type options struct {
	configPath string
	init       bool
	selector   string
	wait       bool
	dryRun     bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !utils.IsErrorTerminal() {
			utils.ShowErrorNotification("rofi-keys", err.Error())
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rofi-keys",
		Short: "A keyboard-driven application launcher using rofi",
		Long: `rofi-keys shows a menu of single-key shortcuts in rofi and launches the
command bound to the key you press. The menu is read from
~/.config/rofi-keys/config.json (or a TOML file given with --config).`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Specify an alternate config file path")
	flags.BoolVar(&opts.init, "init", false, "Initialize a default config file and exit")
	flags.StringVarP(&opts.selector, "selector", "s", launcher.NameAuto,
		"Selector to display the menu with ("+strings.Join(launcher.Names(), ", ")+")")
	flags.BoolVar(&opts.wait, "wait", false, "Wait for the launched command and report its exit status")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the selected command instead of running it")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.MarkFlagFilename("config", "json", "toml")

	return cmd
}

func run(out io.Writer, opts *options) error {
	if opts.debug {
		logging.EnableDebug()
	}

	path, err := config.ResolvePath(opts.configPath)
	if err != nil {
		return err
	}

	if opts.init {
		if err := config.Init(path); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		fmt.Fprintf(out, "Default configuration initialized at %s\n", path)
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		logging.Errorf("Error loading config from %s: %v", path, err)
		cfg = config.Default()
	}

	m := menu.FromConfig(cfg)

	selector, err := newLauncher(opts.selector)
	if err != nil {
		return err
	}
	logging.Debugf("showing %d entries with %s", m.Len(), selector.Name())

	command, ok, err := selector.Select(m)
	if err != nil {
		return err
	}
	if !ok {
		logging.Debugf("no selection made")
		return nil
	}

	if opts.dryRun {
		fmt.Fprintln(out, command)
		return nil
	}

	if opts.wait {
		return await(command)
	}
	return detach(command)
}
