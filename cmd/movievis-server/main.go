package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/douglyuckling/movievis/pkg/api"
	"github.com/douglyuckling/movievis/pkg/layout"
	"github.com/douglyuckling/movievis/pkg/logging"
	"github.com/douglyuckling/movievis/pkg/metrics"
	"github.com/douglyuckling/movievis/pkg/model"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.Int("port", 0, "HTTP server port (overrides config, or set PORT)")
	flag.Parse()

	cfg := api.DefaultServerConfig()
	if *configPath != "" {
		loaded, err := api.LoadConfig(*configPath)
		if err != nil {
			logging.ErrorLog("failed to load config", logging.Error(err), logging.Path(*configPath))
			os.Exit(1)
		}
		cfg = loaded
	}

	// Port precedence: flag, then PORT env, then config.
	if *port == 0 {
		if envPort := os.Getenv("PORT"); envPort != "" {
			if p, err := strconv.Atoi(envPort); err == nil {
				*port = p
			}
		}
	}
	if *port != 0 {
		cfg.Port = *port
	}

	logger := logging.NewDefaultLogger()
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)
	mainLogger := logger.With(logging.Component("main"))

	mainLogger.Info("movievis server starting",
		logging.String("addr", cfg.Addr()),
		logging.String("log_level", cfg.LogLevel),
	)

	catalog := sampleCatalog()
	mainLogger.Info("catalog loaded",
		logging.Count(catalog.NumMovies()),
		logging.Int("persons", catalog.NumPersons()),
	)

	start := time.Now()
	provider, err := layout.NewWithConfig(catalog, cfg.Layout)
	elapsed := time.Since(start)
	registry := metrics.DefaultRegistry()
	if err != nil {
		registry.RecordLayoutBuild("error", elapsed)
		mainLogger.Error("failed to build layout", logging.Error(err))
		os.Exit(1)
	}
	registry.RecordLayoutBuild("success", elapsed)

	stats := provider.Stats()
	mainLogger.Info("layout built",
		logging.Curves(stats.CurvesBuilt),
		logging.Groups(stats.PairGroups),
		logging.Latency(elapsed),
	)

	server, err := api.NewServer(catalog, provider, cfg)
	if err != nil {
		mainLogger.Error("failed to create server", logging.Error(err))
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		mainLogger.Info("shutting down")
		os.Exit(0)
	}()

	if err := server.Start(); err != nil {
		mainLogger.Error("server error", logging.Error(err))
		os.Exit(1)
	}
}

// sampleCatalog builds the built-in dataset the server exposes. Two actors
// crossing between both directors give the overlap resolver real work.
func sampleCatalog() *model.Catalog {
	c := model.NewCatalog()

	adler := c.AddPerson("Nora Adler")
	osei := c.AddPerson("Victor Osei")
	kato := c.AddPerson("Mireille Kato")

	lanterns := c.AddMovie("Paper Lanterns", date(1996, 6, 21), adler.ID)
	meridian := c.AddMovie("The Long Meridian", date(1999, 11, 5), adler.ID)
	salt := c.AddMovie("Salt and Orbit", date(2003, 3, 14), osei.ID)
	engines := c.AddMovie("Quiet Engines", date(2006, 9, 8), osei.ID)
	harbor := c.AddMovie("Harbor of Clocks", date(1992, 2, 28), kato.ID)
	veil := c.AddMovie("The Painted Veilworks", date(2008, 12, 12), kato.ID)

	iris := c.AddPerson("Iris Malloy")
	dev := c.AddPerson("Dev Chandra")
	sofia := c.AddPerson("Sofia Brandt")
	elena := c.AddPerson("Elena Voss")

	mustCast(c, iris, harbor, lanterns, meridian, salt, engines)
	mustCast(c, dev, lanterns, meridian, salt)
	mustCast(c, sofia, meridian, salt, veil)
	mustCast(c, elena, harbor, meridian, veil)

	return c
}

func mustCast(c *model.Catalog, actor *model.Person, movies ...*model.Movie) {
	for _, m := range movies {
		if err := c.AddRole(actor.ID, m.ID); err != nil {
			logging.ErrorLog("failed to seed catalog", logging.Error(err))
			os.Exit(1)
		}
	}
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
