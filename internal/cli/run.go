package cli

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/fixtura/internal/config"
	"github.com/roach88/fixtura/internal/demo"
	"github.com/roach88/fixtura/internal/fixture"
	"github.com/roach88/fixtura/internal/harness"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string
	RootDir    string
	Filter     string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}
	registrar := config.NewRegistrar()
	cobra.CheckErr(demo.AddOptions(registrar))

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration suites",
		Long: `Run the demonstration suites against a fresh fixture session.

Options are resolved from their defaults, then the config file, then flags.
Profile files are read from --rootdir (or the config file's rootdir) when
set, otherwise from the bundled qa.prop and prod.prop.

Exit codes:
  0 - all tests passed, were skipped or were expected failures
  1 - one or more tests failed or errored
  2 - command error (bad flags, unreadable config, missing rootdir)`,
		Example: `  # Run everything with the QA profile
  fixtura run

  # Use the Prod profile and show captured output
  fixtura run --cmdopt Prod -v

  # Run one module as JSON
  fixtura run --filter 'module03::*' --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(cmd, opts, registrar)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to "+config.DefaultFileName)
	cmd.Flags().StringVar(&opts.RootDir, "rootdir", "", "directory holding the profile files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "glob over node IDs (module::test)")
	registrar.BindFlags(cmd.Flags())

	return cmd
}

func runSuites(cmd *cobra.Command, opts *RunOptions, registrar *config.Registrar) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var file *config.File
	if opts.ConfigPath != "" {
		loaded, err := config.LoadFile(opts.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "config", err)
		}
		file = loaded
	}

	values, err := registrar.Resolve(file, cmd.Flags())
	if err != nil {
		return WrapExitError(ExitCommandError, "config", err)
	}

	dir, err := definitionDir(opts.RootDir, file)
	if err != nil {
		return err
	}

	reg := fixture.NewRegistry()
	if err := demo.Register(reg); err != nil {
		return WrapExitError(ExitCommandError, "register fixtures", err)
	}
	cfg := fixture.NewConfig(values)
	demo.Configure(cfg)

	logger := formatter.Logger()
	session := fixture.NewSession(reg, cfg, fixture.WithLogger(logger))

	report, err := harness.Run(cmd.Context(), session, demo.Suites(dir), harness.Options{
		Filter: opts.Filter,
		Logger: logger,
	})
	if err != nil && report == nil {
		return WrapExitError(ExitCommandError, "run", err)
	}

	if formatter.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: report}
		if !report.OK() {
			resp = CLIResponse{
				Status: "error",
				Data:   report,
				Error: &CLIError{
					Code:    "E_TEST_FAILED",
					Message: report.Summary(),
				},
			}
		}
		if werr := formatter.JSON(resp); werr != nil {
			return werr
		}
	} else if werr := harness.WriteText(formatter.Writer, report, formatter.Verbose); werr != nil {
		return werr
	}

	if err != nil {
		return WrapExitError(ExitFailure, "run interrupted", err)
	}
	if !report.OK() {
		return WrapExitError(ExitFailure, report.Summary(), ErrTestsFailed)
	}
	return nil
}

// definitionDir picks the directory profile files are opened from. The
// flag wins over the config file; neither set means the bundled files.
func definitionDir(flagDir string, file *config.File) (fs.FS, error) {
	root := flagDir
	if root == "" && file != nil {
		root = file.RootDir
	}
	if root == "" {
		return demo.Files, nil
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "rootdir", err)
	}
	if !info.IsDir() {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("rootdir %s is not a directory", root))
	}
	return os.DirFS(root), nil
}
