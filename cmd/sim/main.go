package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hollowmere/quadrealm/internal/config"
	"github.com/hollowmere/quadrealm/internal/game"
	"github.com/hollowmere/quadrealm/internal/game/ai"
	"github.com/hollowmere/quadrealm/internal/game/board"
	"github.com/hollowmere/quadrealm/internal/game/catalogue"
	"github.com/hollowmere/quadrealm/internal/game/core"
	"github.com/hollowmere/quadrealm/internal/game/events"
	"github.com/hollowmere/quadrealm/internal/stats"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 to use config default, which falls back to the clock)")
	players := flag.Int("players", -1, "Number of AI players (-1 to use config default)")
	maxTurns := flag.Int("max-turns", -1, "Turn cap for the simulation (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *seed == 0 {
		*seed = cfg.Sim.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *players == -1 {
		*players = cfg.Game.NumPlayers
	}
	if *maxTurns == -1 {
		*maxTurns = cfg.Sim.MaxTurns
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	// Setup logging
	setupLogging(*logLevel, cfg.Logging.Format)

	log.Info().
		Int64("seed", *seed).
		Int("players", *players).
		Int("max_turns", *maxTurns).
		Msg("Starting simulation")

	rng := rand.New(rand.NewSource(*seed))

	gen := board.NewGenerator(board.GenConfig{
		Width:       cfg.Board.Width,
		Height:      cfg.Board.Height,
		SeaLevel:    cfg.Board.SeaLevel,
		MountainLvl: cfg.Board.MountainLvl,
		AridityLvl:  cfg.Board.AridityLvl,
		NoiseScale:  cfg.Board.NoiseScale,
		CoreRatio:   cfg.Board.CoreRatio,
		RareRatio:   cfg.Board.RareRatio,
		RelicRatio:  cfg.Board.RelicRatio,
	}, rng, log.Logger)

	gs := game.New(game.Config{
		FogOfWar:        cfg.Game.FogOfWar,
		ClimaticEffects: cfg.Game.ClimaticEffects,
	}, gen.Generate(), rng)

	// Route engine notifications through the event bus so the simulation log
	// shows the same stream a frontend would consume.
	bus := events.NewEventBus()
	gs.SetSink(events.NewBusSink(bus, gs.ID))
	subscribeLoggers(bus)

	var winner *core.Victory
	bus.SubscribeFunc(events.TypeVictoryAchieved, func(e events.Event) {
		winner = &e.(*events.VictoryEvent).Victory
	})

	if cfg.Stats.Enabled {
		store, err := stats.Open(cfg.Stats.DBPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open statistics store")
		}
		defer store.Close()
		gs.SetRecorder(store)
	}

	namer := catalogue.NewNamer(rng)
	gs.GenPlayers(*players, false)
	gs.InitialiseAIs(namer)
	mm := ai.New(rng, namer)

	for gs.Turn <= *maxTurns && winner == nil {
		gs.ProcessAIs(mm)
		gs.ProcessHeathens()
		gs.EndTurn()
	}

	if winner != nil {
		log.Info().
			Str("player", winner.Player.Name).
			Str("faction", string(winner.Player.Faction)).
			Str("victory", string(winner.Type)).
			Int("turn", gs.Turn).
			Msg("Simulation finished with a victory")
	} else {
		log.Info().Int("max_turns", *maxTurns).Msg("Simulation reached the turn cap")
	}

	for _, p := range gs.Players {
		log.Info().
			Str("player", p.Name).
			Str("faction", string(p.Faction)).
			Int("settlements", len(p.Settlements)).
			Int("units", len(p.Units)).
			Float64("accumulated_wealth", p.AccumulatedWealth).
			Bool("eliminated", p.Eliminated).
			Msg("Final standing")
	}
}

// subscribeLoggers attaches a log line to each notable event type.
func subscribeLoggers(bus *events.EventBus) {
	bus.SubscribeFunc(events.TypeNightChanged, func(e events.Event) {
		ev := e.(*events.NightChangedEvent)
		if ev.IsNight {
			log.Info().Msg("Night falls")
		} else {
			log.Info().Msg("Day breaks")
		}
	})
	bus.SubscribeFunc(events.TypePlayerEliminated, func(e events.Event) {
		ev := e.(*events.EliminationEvent)
		log.Info().Str("player", ev.Player.Name).Msg("Player eliminated")
	})
	bus.SubscribeFunc(events.TypeCloseToVictory, func(e events.Event) {
		ev := e.(*events.CloseToVictoryEvent)
		for _, v := range ev.Imminent {
			log.Info().
				Str("player", v.Player.Name).
				Str("victory", string(v.Type)).
				Msg("Victory imminent")
		}
	})
	bus.SubscribeFunc(events.TypeAchievementsUnlocked, func(e events.Event) {
		ev := e.(*events.AchievementsUnlockedEvent)
		log.Info().Strs("achievements", ev.Names).Msg("Achievements unlocked")
	})
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
