// Command localmip reads an MPS or LP model file, runs the local-search
// engine over it, and writes the best-found solution as plain text.
package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shaowei-cai-group/Local-MIP/config"
	"github.com/shaowei-cai-group/Local-MIP/driver"
	"github.com/shaowei-cai-group/Local-MIP/lp"
	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/mps"
	"github.com/shaowei-cai-group/Local-MIP/output"
	"github.com/shaowei-cai-group/Local-MIP/preprocess"
	"github.com/shaowei-cai-group/Local-MIP/runtime"
)

type options struct {
	modelPath  string
	paramPath  string
	solPath    string
	debug      bool
	logObjProg bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "localmip <model-file>",
		Short:        "Solve a MIP by stochastic local search",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.modelPath = args[0]
			return o.run(cmd)
		},
	}

	cmd.Flags().StringVar(&o.paramPath, "params", "", "optional parameter file (name = value lines)")
	cmd.Flags().StringVar(&o.solPath, "sol", "", "solution output path; empty writes to stdout")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.Flags().BoolVar(&o.logObjProg, "log-progress", false, "log each new incumbent objective as it is found")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func (o *options) run(cmd *cobra.Command) error {
	logger := logrus.New()
	if o.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	var paramFile *os.File
	if o.paramPath != "" {
		f, err := os.Open(o.paramPath)
		if err != nil {
			return fmt.Errorf("opening parameter file: %w", err)
		}
		defer f.Close()
		paramFile = f
	}

	var settings *config.Settings
	var err error
	if paramFile != nil {
		settings, err = config.Resolve(cmd.Flags(), paramFile)
	} else {
		settings, err = config.Resolve(cmd.Flags(), nil)
	}
	if err != nil {
		return err
	}

	store, err := parseModel(o.modelPath, settings.Tolerances.Zero)
	if err != nil {
		return fmt.Errorf("reading model: %w", err)
	}

	if err := preprocess.Process(store, settings.Tolerances, settings.Preprocess); err != nil {
		return fmt.Errorf("preprocessing model: %w", err)
	}

	solver := driver.NewSolver(store, settings.Tolerances, settings.Driver, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-sigCh:
			logger.Warn("received termination signal, stopping")
			solver.Terminate()
		case <-stop:
		}
	}()

	go runtime.TimeoutWatcher(settings.Driver.TimeLimit, solver.Terminate, stop)
	if o.logObjProg {
		getIncumbent := func() (float64, bool) {
			obj := solver.BestObjective()
			if math.IsInf(obj, 1) {
				return 0, false
			}
			return obj, true
		}
		go runtime.ObjectiveLogger(getIncumbent, logger, 100*time.Millisecond, stop)
	}

	if err := solver.Run(); err != nil {
		return fmt.Errorf("running search: %w", err)
	}

	summary := solver.Summary()
	logger.WithFields(logrus.Fields{
		"outcome":  summary.Outcome,
		"found":    summary.FoundAny,
		"steps":    summary.Steps,
		"restarts": summary.RestartCount,
		"elapsed":  summary.Elapsed,
	}).Info("run complete")

	if !summary.FoundAny {
		fmt.Fprintln(os.Stderr, "no feasible solution found.")
		return nil
	}

	if err := output.Verify(store, solver.State, settings.Tolerances); err != nil {
		return fmt.Errorf("solution verify failed: %w", err)
	}
	logger.Infof("best objective: %g", summary.BestObjective)

	if o.solPath != "" {
		f, err := os.Create(o.solPath)
		if err != nil {
			return fmt.Errorf("creating solution file: %w", err)
		}
		defer f.Close()
		return output.WriteSolution(f, store, solver.State)
	}
	return output.WriteSolution(os.Stdout, store, solver.State)
}

func parseModel(path string, zeroTol float64) (*model.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".lp") {
		return lp.Parse(f, zeroTol)
	}
	return mps.Parse(f, zeroTol)
}
