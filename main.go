package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/crillab/gophersat/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/circuit"
	"github.com/GeraldLeeDoesThings/advent-of-code-2024/config"
	"github.com/GeraldLeeDoesThings/advent-of-code-2024/input"
	"github.com/GeraldLeeDoesThings/advent-of-code-2024/solvers"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// app holds the state shared by the commands of a single invocation.
type app struct {
	logger     *zap.Logger
	cfg        *config.Config
	verbose    bool
	testsDir   string
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "advent-of-code-2024 [day]",
		Short: "Solves the Advent of Code 2024 puzzles",
		Long: `Solves the puzzle of the given day using the matching file of the tests directory.
Without a day, the highest-numbered input file is solved.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runDay,
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.testsDir, "tests", "tests", "Directory holding one input file per day")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "aoc.yaml", "Configuration file")

	daysCmd := &cobra.Command{
		Use:   "days",
		Short: "Lists the days that have a solver",
		Args:  cobra.NoArgs,
		RunE:  a.listDays,
	}

	miterCmd := &cobra.Command{
		Use:   "miter FILE",
		Short: "Repairs a day 24 circuit and prints its equivalence miter in DIMACS format",
		Args:  cobra.ExactArgs(1),
		RunE:  a.writeMiter,
	}

	var model bool
	satCmd := &cobra.Command{
		Use:   "sat FILE",
		Short: "Solves a DIMACS (.cnf) or OPB (.opb) problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveFile(cmd.OutOrStdout(), args[0], model)
		},
	}
	satCmd.Flags().BoolVar(&model, "model", false, "Print the model when the problem is satisfiable")

	var force bool
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Writes the effective configuration to the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.writeConfig(cmd, force)
		},
	}
	configCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	rootCmd.AddCommand(daysCmd, miterCmd, satCmd, configCmd)
	return rootCmd
}

// setup loads the configuration and builds the logger. Flags set on the command line
// win over the configuration file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tests") {
		cfg.TestsDir = a.testsDir
	}
	a.cfg = cfg

	var zc zap.Config
	if cfg.Logging.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	solvers.SetLogger(logger)
	return nil
}

func (a *app) runDay(cmd *cobra.Command, args []string) error {
	catalog, err := input.Scan(a.cfg.TestsDir)
	if err != nil {
		return err
	}
	var day int
	if len(args) == 0 {
		if day, err = catalog.Latest(); err != nil {
			return err
		}
	} else if day, err = strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("invalid day %q: %w", args[0], err)
	}
	if _, ok := solvers.Lookup(day); !ok {
		return &solvers.NoSolverError{Day: day}
	}
	text, err := catalog.Read(day)
	if err != nil {
		return err
	}
	a.logger.Debug("solving", zap.Int("day", day), zap.Int("size", len(text)))
	answer, err := solvers.Solve(day, text)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Day: %d", day)))
	fmt.Fprintln(out, answer)
	return nil
}

func (a *app) listDays(cmd *cobra.Command, args []string) error {
	catalog, err := input.Scan(a.cfg.TestsDir)
	if err != nil {
		a.logger.Warn("no input directory", zap.String("dir", a.cfg.TestsDir), zap.Error(err))
	}
	out := cmd.OutOrStdout()
	for _, day := range solvers.Days() {
		status := mutedStyle.Render("no input")
		if catalog != nil && catalog.Has(day) {
			path, _ := catalog.Path(day)
			status = filepath.Base(path)
		}
		fmt.Fprintf(out, "%2d  %s\n", day, status)
	}
	return nil
}

func (a *app) writeMiter(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not open %q: %w", args[0], err)
	}
	c, err := circuit.Parse(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if err != nil {
		return fmt.Errorf("could not parse circuit in %q: %w", args[0], err)
	}
	swaps, err := circuit.Repair(c, circuit.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Info("circuit repaired", zap.Strings("swapped", circuit.Names(swaps)))
	return circuit.WriteDIMACS(c, cmd.OutOrStdout())
}

func (a *app) writeConfig(cmd *cobra.Command, force bool) error {
	if _, err := os.Stat(a.configPath); err == nil && !force {
		return fmt.Errorf("%q already exists, use --force to overwrite it", a.configPath)
	}
	if err := a.cfg.Save(a.configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.configPath)
	return nil
}

func parseProblem(path string) (*solver.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	switch filepath.Ext(path) {
	case ".cnf":
		pb, err := solver.ParseCNF(f)
		if err != nil {
			return nil, fmt.Errorf("could not parse DIMACS file %q: %w", path, err)
		}
		return pb, nil
	case ".opb":
		pb, err := solver.ParseOPB(f)
		if err != nil {
			return nil, fmt.Errorf("could not parse OPB file %q: %w", path, err)
		}
		return pb, nil
	}
	return nil, fmt.Errorf("invalid file format for %q", path)
}

func (a *app) solveFile(out io.Writer, path string, model bool) error {
	pb, err := parseProblem(path)
	if err != nil {
		return err
	}
	a.logger.Debug("problem loaded", zap.Int("vars", pb.NbVars), zap.Int("clauses", len(pb.Clauses)))
	s := solver.New(pb)
	var sat bool
	if s.Optim() {
		cost := s.Minimize()
		sat = cost >= 0
		if sat {
			fmt.Fprintf(out, "o %d\n", cost)
		}
	} else {
		sat = s.Solve() == solver.Sat
	}
	a.logger.Debug("problem solved",
		zap.Int("conflicts", s.Stats.NbConflicts),
		zap.Int("restarts", s.Stats.NbRestarts),
		zap.Int("decisions", s.Stats.NbDecisions))
	if !sat {
		fmt.Fprintln(out, "UNSATISFIABLE")
		return nil
	}
	fmt.Fprintln(out, "SATISFIABLE")
	if model {
		var sb strings.Builder
		sb.WriteString("v")
		for i, val := range s.Model() {
			if val {
				fmt.Fprintf(&sb, " %d", i+1)
			} else {
				fmt.Fprintf(&sb, " %d", -(i + 1))
			}
		}
		sb.WriteString(" 0")
		fmt.Fprintln(out, sb.String())
	}
	return nil
}

// runCLI executes cmd. Errors are reported on the command's output, like answers.
func runCLI(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), err)
	}
}

func main() {
	runCLI(newRootCmd())
}
