package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/panicvalidate/internal/app"
	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/infrastructure/cli/commands"
	"github.com/doeshing/panicvalidate/internal/infrastructure/config"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// Execute runs the CLI with args and returns the process exit code. A failed
// validation exits 1 with the report already on stdout; any other error exits 1
// with "error: ..." on stderr.
func Execute(ctx context.Context, opts Options, args []string, stdout, stderr io.Writer) int {
	root, container, err := newRootCmd(opts)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer container.Sync()

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, domain.ErrValidationFailed) {
			fmt.Fprintln(stderr, "error:", err)
		}
		return 1
	}
	return 0
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// validates the project rooted at --root.
func NewRootCmd(opts Options) (*cobra.Command, error) {
	root, _, err := newRootCmd(opts)
	return root, err
}

func newRootCmd(opts Options) (*cobra.Command, *app.Container, error) {
	loader := config.NewLoader()
	container := &app.Container{}

	root := &cobra.Command{
		Use:   "panicvalidate",
		Short: "Validate the gps_tracker panic button changes",
		Long: "panicvalidate reads the client script, server script and config of the gps_tracker\n" +
			"resource and checks them against an ordered list of text rules.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			*container = *app.BuildContainer(loader, opts.Verbose || loader.Verbose(), cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunValidation(cmd, container)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String(config.KeyRoot, ".", "Project root the input paths are resolved against")
	flags.String(config.KeyClient, domain.DefaultClientPath, "Client script path, relative to root")
	flags.String(config.KeyServer, domain.DefaultServerPath, "Server script path, relative to root")
	flags.String(config.KeyConfig, domain.DefaultConfigPath, "Config file path, relative to root")
	flags.String(config.KeyRules, "", "YAML rule file replacing the embedded defaults")
	flags.String(config.KeySettings, "", "Settings file (default <root>/"+domain.SettingsFileName+")")
	flags.BoolP(config.KeyVerbose, "v", false, "List every check and log to stderr")
	if err := loader.BindFlags(flags); err != nil {
		return nil, nil, err
	}

	root.AddCommand(commands.NewRunCommand(container))
	root.AddCommand(commands.NewRulesCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, container, nil
}
