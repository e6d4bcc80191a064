// Package cmd provides the root command and CLI setup for noprint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"noprint.dev/pkg/noprint/internal/adapter"
	"noprint.dev/pkg/noprint/internal/controller"
	"noprint.dev/pkg/noprint/internal/domain"
	m "noprint.dev/pkg/noprint/internal/model"
)

// exitFatal is used for usage errors and anything that fails before a verdict exists.
const exitFatal = 2

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore

// newUI is replaced in tests to capture output.
var newUI = func(cmd *cobra.Command, opts ...controller.UIOption) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(os.Stdout) && controller.IsTTY(os.Stderr), opts...)
}

// buildWorkflow is replaced in tests to inject a mock workflow.
var buildWorkflow = newCheckWorkflow

var (
	jobsFlag       int
	firstOnlyFlag  bool
	errorOutFlag   bool
	verboseFlag    int
	quietFlag      bool
	noCwdFlag      bool
	pathsFlag      []string
	pythonFlag     string
	reservedFlag   string
	maxDepthFlag   int
	reportFlag     string
	logFileFlag    string
	logVerboseFlag bool
)

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const rootLongDescription = `noprint checks Python packages for uses of print without importing them.

Each name is resolved the way the import system would resolve it, first in the
working directory and then in the installed search roots. Packages are walked
recursively and every module found is parsed and searched.

Exit status: 0 clear (or flagged without --error-out), 1 flagged with
--error-out, 2 when a module could not be resolved or parsed.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "noprint [flags] <package>[.<module>...] ...",
		Short:         "Detect print statements in Python packages",
		Long:          rootLongDescription,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			cmd.SilenceUsage = true

			return runCheck(cmd, args)
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.IntVarP(&jobsFlag, jobsFlagName, "j", viper.GetInt(jobsConfigKey), "number of workers (0 uses all CPUs)")
	bindFlagToConfig(flags.Lookup(jobsFlagName), jobsConfigKey)

	flags.BoolVarP(&firstOnlyFlag, firstOnlyFlagName, "f", viper.GetBool(firstOnlyConfigKey), "stop at the first flagged occurrence")
	bindFlagToConfig(flags.Lookup(firstOnlyFlagName), firstOnlyConfigKey)

	flags.BoolVarP(&errorOutFlag, errorOutFlagName, "e", viper.GetBool(errorOutConfigKey), "exit with status 1 when print statements are found")
	bindFlagToConfig(flags.Lookup(errorOutFlagName), errorOutConfigKey)

	flags.CountVarP(&verboseFlag, verboseFlagName, "v", "increase output verbosity (repeatable)")
	flags.BoolVarP(&quietFlag, quietFlagName, "q", false, "only report failures")

	flags.BoolVar(&noCwdFlag, noCwdFlagName, false, "do not look for packages in the working directory")

	flags.StringArrayVarP(&pathsFlag, pathFlagName, "p", viper.GetStringSlice(searchPathsKey), "extra search root for installed packages (can be repeated)")
	bindFlagToConfig(flags.Lookup(pathFlagName), searchPathsKey)

	flags.StringVar(&pythonFlag, pythonFlagName, viper.GetString(searchInterpreterKey), "interpreter asked for its search path (empty disables)")
	bindFlagToConfig(flags.Lookup(pythonFlagName), searchInterpreterKey)

	flags.StringVar(&reservedFlag, reservedFlagName, viper.GetString(reservedConfigKey), "identifier to look for")
	bindFlagToConfig(flags.Lookup(reservedFlagName), reservedConfigKey)

	flags.IntVar(&maxDepthFlag, maxDepthFlagName, viper.GetInt(searchMaxDepthKey), "maximum package depth below each name")
	bindFlagToConfig(flags.Lookup(maxDepthFlagName), searchMaxDepthKey)

	flags.StringVar(&reportFlag, reportFlagName, viper.GetString(reportPathKey), "write a YAML report to this path")
	bindFlagToConfig(flags.Lookup(reportFlagName), reportPathKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVar(&logVerboseFlag, logVerboseFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logVerboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// exitError carries a process status out of RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	preferWorkingDir := viper.GetBool(searchCwdKey) && !noCwdFlag
	errorOut := viper.GetBool(errorOutConfigKey)
	firstOnly := viper.GetBool(firstOnlyConfigKey)

	workflow, err := buildWorkflow(ctx, cmd, firstOnly)
	if err != nil {
		return err
	}

	verdict, err := workflow.Check(ctx, domain.CheckArgs{
		Packages:         parsePackages(args),
		Workers:          viper.GetInt(jobsConfigKey),
		StopOnFirstFlag:  firstOnly,
		Verbosity:        resolveVerbosity(viper.GetInt(verbosityConfigKey), verboseFlag, quietFlag),
		ErrorOut:         errorOut,
		PreferWorkingDir: preferWorkingDir,
		MaxDepth:         viper.GetInt(searchMaxDepthKey),
		Report:           m.Path(viper.GetString(reportPathKey)),
	})
	if err != nil {
		return err
	}

	if code := verdict.ExitCode(errorOut); code != 0 {
		return &exitError{code: code}
	}

	return nil
}

// newCheckWorkflow wires the pipeline for one run from the current configuration.
func newCheckWorkflow(ctx context.Context, cmd *cobra.Command, firstOnly bool) (domain.Workflow, error) {
	workingDir, err := fsAdapter.Getwd(ctx)
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	roots, err := searchRoots(ctx)
	if err != nil {
		return nil, err
	}

	slog.Debug("Search roots", "working_dir", workingDir, "roots", roots)

	resolver := domain.NewModuleResolver(fsAdapter, workingDir, roots)
	scheduler := domain.NewDiscoveryScheduler(fsAdapter, resolver, domain.NewPackageDiscovery(fsAdapter))
	reserved := viper.GetString(reservedConfigKey)
	scanner := adapter.NewLocalPythonFileAdapter(
		fsAdapter,
		adapter.WithReservedWord(reserved),
		adapter.WithStopAtFirst(firstOnly),
	)
	ui := newUI(cmd, controller.WithReservedWord(reserved))

	return domain.NewWorkflow(scheduler, scanner, reportStore, ui), nil
}

// searchRoots collects the installed search roots. An interpreter that cannot
// be queried is skipped so that explicit roots still work without Python.
func searchRoots(ctx context.Context) ([]m.Path, error) {
	opts := adapter.SearchRootsOptions{
		Paths:         viper.GetStringSlice(searchPathsKey),
		UsePythonPath: viper.GetBool(searchPythonPathKey),
		UseVirtualEnv: viper.GetBool(searchVirtualEnvKey),
		Interpreter:   viper.GetString(searchInterpreterKey),
	}

	roots, err := adapter.SearchRoots(ctx, fsAdapter, opts)
	if err == nil {
		return roots, nil
	}

	slog.Warn("Ignoring interpreter search path", "interpreter", opts.Interpreter, "error", err)

	opts.Interpreter = ""

	roots, err = adapter.SearchRoots(ctx, fsAdapter, opts)
	if err != nil {
		return nil, fmt.Errorf("search roots: %w", err)
	}

	return roots, nil
}

func parsePackages(args []string) []m.DottedName {
	names := make([]m.DottedName, 0, len(args))
	for _, arg := range args {
		names = append(names, m.DottedName(arg))
	}

	return names
}

// exitCode maps the error returned by the root command to a process status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	return exitFatal
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	var exitErr *exitError
	if err != nil && !errors.As(err, &exitErr) {
		rootCmd.PrintErrln("Error:", err)
	}

	os.Exit(exitCode(err))
}
