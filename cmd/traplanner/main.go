// Command traplanner drives a grid planning scenario described by a YAML
// config file through the TRA* planner, printing the resulting path and
// optionally serving Prometheus metrics while it runs.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dyouakim/traplanner/gridenv"
	"github.com/dyouakim/traplanner/metrics"
	"github.com/dyouakim/traplanner/planner"
)

var cli struct {
	Scenario string `arg:"" name:"scenario" help:"Path to a scenario YAML file." type:"path"`

	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090). Empty disables metrics." default:""`
	Budget      time.Duration `name:"budget" help:"Wall-clock replan budget." default:"1s"`
	Verbose     bool          `name:"verbose" short:"v" help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	cfg, err := loadScenario(cli.Scenario)
	if err != nil {
		logger.Fatal("failed to load scenario", "error", err)
	}

	grid, err := gridenv.NewGrid(cfg.blockedGrid(), gridenv.Options{Conn: connectivity(cfg.Conn8)})
	if err != nil {
		logger.Fatal("invalid grid", "error", err)
	}
	if err := grid.SetGoal(cfg.Goal.X, cfg.Goal.Y); err != nil {
		logger.Fatal("invalid goal", "error", err)
	}

	startID, err := grid.StateID(cfg.Start.X, cfg.Start.Y)
	if err != nil {
		logger.Fatal("invalid start", "error", err)
	}
	goalID, err := grid.StateID(cfg.Goal.X, cfg.Goal.Y)
	if err != nil {
		logger.Fatal("invalid goal", "error", err)
	}

	opts := []planner.Option{planner.WithLogger(logger)}

	if cli.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg, "traplanner", "planner")
		if err != nil {
			logger.Fatal("failed to register metrics", "error", err)
		}
		opts = append(opts, planner.WithMetrics(rec))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			logger.Info("serving metrics", "addr", cli.MetricsAddr)
			if err := http.ListenAndServe(cli.MetricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	p := planner.New(grid, gridenv.NewManhattanHeuristic(grid), opts...)
	p.SetStart(startID)
	p.SetGoal(goalID)
	p.SetEpsilonSchedule(cfg.Epsilon.Initial, cfg.Epsilon.Final, cfg.Epsilon.Delta)
	p.SetSearchMode(cfg.Epsilon.Initial == cfg.Epsilon.Final)
	p.SetAllowPartialSolutions(cfg.AllowPartial)

	tp := planner.TimeParameters{
		Type:               planner.BudgetTime,
		Bounded:            true,
		Improve:            cfg.Epsilon.Initial != cfg.Epsilon.Final,
		MaxAllowedTimeInit: cli.Budget,
		MaxAllowedTime:     cli.Budget,
	}
	if cfg.MaxExpansions > 0 {
		tp.Type = planner.BudgetExpansions
		tp.MaxExpansions = cfg.MaxExpansions
		tp.MaxExpansionsInit = cfg.MaxExpansionsInit
		if tp.MaxExpansionsInit == 0 {
			tp.MaxExpansionsInit = cfg.MaxExpansions
		}
	}

	code, sol, err := p.ReplanWithTimeParameters(tp)
	if err != nil {
		logger.Error("replan failed", "code", code.String(), "error", err)
		os.Exit(1)
	}

	fmt.Printf("result: %s\n", code.String())
	fmt.Printf("cost: %d\n", sol.Cost)
	fmt.Print("path:")
	for _, id := range sol.Path {
		x, y := grid.Coordinate(id)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()
}

func connectivity(conn8 bool) gridenv.Connectivity {
	if conn8 {
		return gridenv.Conn8
	}
	return gridenv.Conn4
}
