// Command plife runs a particle life simulation, either headless or in a
// window.
package main

import (
	"flag"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/MightyAlex200/plife"
)

func main() {
	var (
		configPath  = flag.String("config", "", "JSON configuration file")
		template    = flag.String("template", "diversity", "procedural ruleset preset: "+strings.Join(plife.TemplateNames(), ", "))
		rulesetPath = flag.String("ruleset", "", "load a saved ruleset instead of generating one")
		points      = flag.Int("points", 1000, "number of particles (ignored with -config)")
		wallType    = flag.String("wall-type", "none", "wall type: none, wrapping or square (ignored with -config)")
		wallDist    = flag.Float64("wall-dist", 0, "wall distance, required for wrapping and square walls")
		seed        = flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
		headless    = flag.Bool("headless", false, "run without a window")
		steps       = flag.Uint64("steps", 0, "stop after this many headless steps (0 = until interrupted)")
		checkpoint  = flag.Uint64("checkpoint", 1000, "log a checkpoint every n headless steps (0 = never)")
		savePath    = flag.String("save-ruleset", "", "write the generated ruleset to this file before running")
	)
	flag.Parse()

	logger := log.New(os.Stderr)

	cfg, err := buildConfig(*configPath, *template, *points, *wallType, *wallDist)
	if err != nil {
		logger.Fatal("bad configuration", "err", err)
	}
	if *rulesetPath != "" {
		rs, err := plife.LoadRuleset(*rulesetPath)
		if err != nil {
			logger.Fatal("bad ruleset file", "path", *rulesetPath, "err", err)
		}
		cfg.Ruleset = plife.RulesetConfig{Precise: preciseFromRuleset(rs)}
	}

	sim, err := plife.Initialize(cfg, *seed)
	if err != nil {
		logger.Fatal("initialization failed", "err", err)
	}
	logger.Info("simulation ready",
		"seed", *seed,
		"types", sim.Ruleset().NumTypes,
		"particles", len(sim.Snapshot()),
		"friction", sim.Ruleset().Friction,
	)

	if *savePath != "" {
		if err := plife.SaveRuleset(*savePath, sim.Ruleset()); err != nil {
			logger.Fatal("saving ruleset failed", "path", *savePath, "err", err)
		}
		logger.Info("ruleset saved", "path", *savePath)
	}

	if *headless {
		runHeadless(logger, sim, *steps, *checkpoint)
		return
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("plife")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(NewViewer(sim)); err != nil {
		logger.Fatal("viewer exited", "err", err)
	}
}

// buildConfig assembles the decoded configuration from a config file or,
// absent one, from the template and wall flags.
func buildConfig(configPath, template string, points int, wallType string, wallDist float64) (plife.Config, error) {
	if configPath != "" {
		return plife.LoadConfig(configPath)
	}
	procedural, ok := plife.Template(template)
	if !ok {
		return plife.Config{}, &plife.ConfigError{Field: "template", Reason: "unknown preset " + template}
	}
	cfg := plife.Config{
		Ruleset: plife.RulesetConfig{Procedural: &procedural},
		Walls:   plife.WallsConfig{Type: wallType},
		Points:  plife.PointsConfig{Count: distPtr(plife.Constant(float64(points)))},
	}
	if wallType != "none" {
		cfg.Walls.Dist = distPtr(plife.Constant(wallDist))
	}
	return cfg, nil
}

func distPtr(d plife.Distribution) *plife.Distribution { return &d }

// preciseFromRuleset re-expresses a saved ruleset as a precise table so it
// flows through the normal initialization path.
func preciseFromRuleset(rs *plife.Ruleset) *plife.PreciseConfig {
	types := make([]plife.TypeParams, rs.NumTypes)
	for a := 0; a < rs.NumTypes; a++ {
		row := plife.TypeParams{
			Attractions: make([]float64, rs.NumTypes),
			MinR:        make([]float64, rs.NumTypes),
			MaxR:        make([]float64, rs.NumTypes),
		}
		for b := 0; b < rs.NumTypes; b++ {
			row.Attractions[b] = rs.Params[a][b].Attraction
			row.MinR[b] = rs.Params[a][b].MinR
			row.MaxR[b] = rs.Params[a][b].MaxR
		}
		types[a] = row
	}
	return &plife.PreciseConfig{Friction: rs.Friction, Types: types}
}

// runHeadless steps the simulation in a tight loop, logging checkpoints and
// stopping between ticks on SIGINT or once the step limit is reached.
func runHeadless(logger *log.Logger, sim *plife.Simulation, steps, checkpoint uint64) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	start := time.Now()
	last := start
	var total, sinceCheckpoint uint64
	for {
		sim.Step()
		total++
		sinceCheckpoint++

		if checkpoint > 0 && total%checkpoint == 0 {
			now := time.Now()
			tps := float64(sinceCheckpoint) / now.Sub(last).Seconds()
			logger.Info("checkpoint",
				"steps", total,
				"elapsed", now.Sub(start).Round(time.Millisecond),
				"tps", int(tps),
				"realtime", int(tps/60),
			)
			last = now
			sinceCheckpoint = 0
		}

		select {
		case <-stop:
			logger.Info("interrupted", "steps", total, "elapsed", time.Since(start).Round(time.Millisecond))
			return
		default:
		}
		if steps > 0 && total >= steps {
			break
		}
	}
	logger.Info("done", "steps", total, "elapsed", time.Since(start).Round(time.Millisecond))
}
