package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/simopts/internal/config"
	"github.com/san-kum/simopts/internal/editor"
	"github.com/san-kum/simopts/internal/geodetic"
	"github.com/san-kum/simopts/internal/listener"
	"github.com/san-kum/simopts/internal/listener/example"
	"github.com/san-kum/simopts/internal/logging"
	"github.com/san-kum/simopts/internal/options"
	"github.com/san-kum/simopts/internal/plugin"
	"github.com/san-kum/simopts/internal/prefs"
	"github.com/san-kum/simopts/internal/tui"
)

var (
	configFile   string
	optionsFile  string
	prefsBackend string
	prefsPath    string
	logLevel     string
	simName      string
	// timestep
	unitSymbol string
	// listeners validate
	workers int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simopts",
		Short: "edit simulation run options",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, false, showOptions)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "tool config file (yaml)")
	pf.StringVar(&optionsFile, "options", config.DefaultOptionsPath, "simulation options file (yaml)")
	pf.StringVar(&prefsBackend, "prefs-backend", "sqlite", "preferences backend: sqlite, file, memory")
	pf.StringVar(&prefsPath, "prefs-path", config.DefaultPrefsPath(), "preferences location")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&simName, "name", "simulation", "simulation name")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show run options and listener status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, false, showOptions)
		},
	}

	timestepCmd := &cobra.Command{
		Use:   "timestep [value]",
		Short: "show or set the time step",
		Long:  "show or set the time step. values may carry a unit suffix, e.g. 5ms or 0.01 s",
		Args:  cobra.MaximumNArgs(1),
		RunE:  timeStep,
	}
	timestepCmd.Flags().StringVar(&unitSymbol, "unit", "", "display unit (s, ms)")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "reset time step and geodetic computation to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, true, func(s *editor.Session) error {
				s.ResetRunOptions()
				return showOptions(s)
			})
		},
	}

	geodeticCmd := &cobra.Command{
		Use:   "geodetic [name]",
		Short: "show or select the geodetic computation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  selectGeodetic,
	}

	listenersCmd := &cobra.Command{
		Use:   "listeners",
		Short: "manage simulation listeners",
	}

	listenersListCmd := &cobra.Command{
		Use:   "list",
		Short: "list listeners with validation status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, false, func(s *editor.Session) error {
				fmt.Print(tui.RenderListeners(s.Listeners))
				return nil
			})
		},
	}

	listenersAddCmd := &cobra.Command{
		Use:   "add [id]",
		Short: "add a listener by qualified type name (prompts when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  addListener,
	}

	listenersRemoveCmd := &cobra.Command{
		Use:   "remove [index...]",
		Short: "remove listeners by index",
		Args:  cobra.MinimumNArgs(1),
		RunE:  removeListeners,
	}

	listenersValidateCmd := &cobra.Command{
		Use:   "validate",
		Short: "validate all listeners concurrently",
		Args:  cobra.NoArgs,
		RunE:  validateListeners,
	}
	listenersValidateCmd.Flags().IntVar(&workers, "workers", listener.DefaultWorkers, "validation workers")

	listenersAvailableCmd := &cobra.Command{
		Use:   "available",
		Short: "list registered listener types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range plugin.Default.Identifiers() {
				fmt.Println(id)
			}
			return nil
		},
	}

	listenersCmd.AddCommand(listenersListCmd, listenersAddCmd, listenersRemoveCmd, listenersValidateCmd, listenersAvailableCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or apply one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  presets,
	}

	rootCmd.AddCommand(showCmd, timestepCmd, resetCmd, geodeticCmd, listenersCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the tool config and lets explicitly set flags win over
// it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("options") {
		cfg.OptionsPath = optionsFile
	}
	if configFile == "" || flags.Changed("prefs-backend") {
		cfg.Prefs.Backend = prefsBackend
	}
	if configFile == "" || flags.Changed("prefs-path") {
		cfg.Prefs.Path = prefsPath
	}
	if configFile == "" || flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Validation.Workers = workers
	}
	return cfg, nil
}

func withSession(cmd *cobra.Command, save bool, fn func(*editor.Session) error) error {
	return runSession(cmd, save, func(s *editor.Session, _ *config.Config) error {
		return fn(s)
	})
}

// runSession opens the options file, runs fn on a session over it, and
// writes the file back when save is set and fn succeeded.
func runSession(cmd *cobra.Command, save bool, fn func(*editor.Session, *config.Config) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.Init(cfg.Log, os.Stderr)

	store, err := prefs.Open(cfg.Prefs.Backend, cfg.Prefs.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := config.LoadOptions(cfg.OptionsPath)
	if err != nil {
		return err
	}
	opts := options.New()
	doc.Apply(opts)

	sim := options.WithOptions(simName, opts)
	s := editor.Open(sim, editor.Deps{
		Resolver: plugin.Default,
		Prefs:    store,
		Logger:   logger,
	})
	defer s.Close()

	if err := fn(s, cfg); err != nil {
		return err
	}
	if !save {
		return nil
	}
	if err := config.SaveOptions(cfg.OptionsPath, config.DocumentFrom(opts)); err != nil {
		return fmt.Errorf("failed to save options: %w", err)
	}
	logger.Debug("Options saved", "path", cfg.OptionsPath)
	return nil
}

func showOptions(s *editor.Session) error {
	fmt.Print(tui.RenderOptions(s, s.TimeStep.NewView()))
	return nil
}

func timeStep(cmd *cobra.Command, args []string) error {
	return withSession(cmd, len(args) > 0, func(s *editor.Session) error {
		view := s.TimeStep.NewView()
		if unitSymbol != "" {
			if err := view.SetUnit(unitSymbol); err != nil {
				return err
			}
		}
		if len(args) > 0 {
			v, err := s.TimeStep.Units().Parse(args[0])
			if err != nil {
				return err
			}
			s.TimeStep.SetValue(v)
		}
		fmt.Println(view.String())
		return nil
	})
}

func selectGeodetic(cmd *cobra.Command, args []string) error {
	return withSession(cmd, len(args) > 0, func(s *editor.Session) error {
		if len(args) > 0 {
			g, err := geodetic.ParseStrategy(args[0])
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strategyNames())
			}
			s.Geodetic.SetSelected(g)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, o := range s.Geodetic.Options() {
			mark := " "
			if o.Value == s.Geodetic.Selected() {
				mark = "*"
			}
			fmt.Fprintf(w, "%s %s\t%s\n", mark, o.Value, o.Description)
		}
		return w.Flush()
	})
}

func strategyNames() string {
	var names []string
	for _, g := range geodetic.Values() {
		names = append(names, g.String())
	}
	return strings.Join(names, ", ")
}

func addListener(cmd *cobra.Command, args []string) error {
	return withSession(cmd, true, func(s *editor.Session) error {
		ctx := cmd.Context()
		if len(args) == 1 {
			if !s.AddListener(ctx, args[0]) {
				fmt.Println("nothing added")
				return nil
			}
		} else {
			prompt := &tui.Prompt{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Hint: example.CSVSaveID}
			added, err := s.PromptAddListener(ctx, prompt)
			if err != nil {
				return err
			}
			if !added {
				fmt.Println("nothing added")
				return nil
			}
		}

		i := s.Listeners.Size() - 1
		id, _ := s.Listeners.ElementAt(i)
		v, _ := s.Listeners.Status(i)
		fmt.Println(tui.RenderRow(i, id, v))
		if v.OK() {
			fmt.Println(v.String())
		}
		return nil
	})
}

func removeListeners(cmd *cobra.Command, args []string) error {
	indices := make([]int, 0, len(args))
	for _, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", a, err)
		}
		indices = append(indices, i)
	}

	return withSession(cmd, true, func(s *editor.Session) error {
		if err := s.Listeners.RemoveAt(indices...); err != nil {
			return err
		}
		fmt.Print(tui.RenderListeners(s.Listeners))
		return nil
	})
}

func validateListeners(cmd *cobra.Command, args []string) error {
	return runSession(cmd, false, func(s *editor.Session, cfg *config.Config) error {
		failed := 0
		applied, err := s.ValidateListeners(cmd.Context(), cfg.Validation.Workers, func(i int, id string, v listener.Verdict) {
			if !v.OK() {
				failed++
			}
			fmt.Println(tui.RenderRow(i, id, v))
		})
		if err != nil {
			return err
		}
		if !applied {
			slog.Warn("Listener list changed during validation, results dropped")
			return nil
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d listeners failed validation", failed, s.Listeners.Size())
		}
		return nil
	})
}

func presets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("presets:")
		for _, name := range config.ListPresets() {
			p := config.GetPreset(name)
			fmt.Printf("  %-8s time step %g s, %s\n", name, p.TimeStep, p.GeodeticComputation)
		}
		return nil
	}

	p := config.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}
	return withSession(cmd, true, func(s *editor.Session) error {
		s.TimeStep.SetValue(p.TimeStep)
		s.Geodetic.SetSelected(p.GeodeticComputation)
		return showOptions(s)
	})
}
