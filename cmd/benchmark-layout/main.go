package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/douglyuckling/movievis/pkg/layout"
	"github.com/douglyuckling/movievis/pkg/model"
)

func main() {
	actors := flag.Int("actors", 500, "Number of actors to generate")
	movies := flag.Int("movies", 200, "Number of movies to generate")
	directors := flag.Int("directors", 40, "Number of directors to generate")
	roles := flag.Int("roles", 6, "Movies per actor filmography")
	builds := flag.Int("builds", 3, "Number of layout builds to time")
	queries := flag.Int("queries", 10000, "Number of marker lookups to time")
	seed := flag.Int64("seed", 42, "Random seed for the synthetic catalog")
	flag.Parse()

	fmt.Printf("🔥 movievis Layout Benchmark\n")
	fmt.Printf("============================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Actors:    %d\n", *actors)
	fmt.Printf("  Movies:    %d\n", *movies)
	fmt.Printf("  Directors: %d\n", *directors)
	fmt.Printf("  Roles:     %d per actor\n", *roles)
	fmt.Printf("  Seed:      %d\n\n", *seed)

	r := rand.New(rand.NewSource(*seed))

	// Benchmark 1: Catalog construction
	fmt.Printf("📇 Benchmark 1: Catalog Construction\n")
	start := time.Now()
	catalog := model.NewCatalog()

	directorList := make([]*model.Person, *directors)
	for i := range directorList {
		directorList[i] = catalog.AddPerson(fmt.Sprintf("Director %02d", i))
	}

	movieList := make([]*model.Movie, *movies)
	for i := range movieList {
		released := time.Date(
			1985+r.Intn(25), time.Month(1+r.Intn(12)), 1+r.Intn(28),
			0, 0, 0, 0, time.UTC)
		director := directorList[r.Intn(len(directorList))]
		movieList[i] = catalog.AddMovie(fmt.Sprintf("Movie %03d", i), released, director.ID)
	}

	rolesPerActor := *roles
	if rolesPerActor > len(movieList) {
		rolesPerActor = len(movieList)
	}
	for i := 0; i < *actors; i++ {
		actor := catalog.AddPerson(fmt.Sprintf("Actor %03d", i))
		for _, idx := range r.Perm(len(movieList))[:rolesPerActor] {
			if err := catalog.AddRole(actor.ID, movieList[idx].ID); err != nil {
				log.Fatalf("Failed to add role: %v", err)
			}
		}
		if (i+1)%100 == 0 {
			fmt.Printf("  Generated %d actors...\n", i+1)
		}
	}

	catalogDuration := time.Since(start)
	fmt.Printf("  ✅ Catalog ready in %v (%d persons, %d movies)\n\n",
		catalogDuration, catalog.NumPersons(), catalog.NumMovies())

	// Benchmark 2: Layout builds
	fmt.Printf("📐 Benchmark 2: Layout Build (%d runs)\n", *builds)
	var provider *layout.Provider
	var totalBuild time.Duration
	for i := 0; i < *builds; i++ {
		start = time.Now()
		p, err := layout.New(catalog)
		if err != nil {
			log.Fatalf("Failed to build layout: %v", err)
		}
		elapsed := time.Since(start)
		totalBuild += elapsed
		provider = p

		st := p.Stats()
		fmt.Printf("  Run %d: %v (%d curves, %.0f curves/sec)\n",
			i+1, elapsed, st.CurvesBuilt, float64(st.CurvesBuilt)/elapsed.Seconds())
	}
	fmt.Printf("  ✅ Average build: %v\n\n", totalBuild/time.Duration(*builds))

	stats := provider.Stats()
	fmt.Printf("Layout statistics:\n")
	fmt.Printf("  Curves built:     %d\n", stats.CurvesBuilt)
	fmt.Printf("  Pair groups:      %d\n", stats.PairGroups)
	fmt.Printf("  Groups diverged:  %d\n", stats.GroupsDiverged)
	fmt.Printf("  Director columns: %d\n\n", stats.DirectorsAssigned)

	// Benchmark 3: Marker lookups
	fmt.Printf("🗺  Benchmark 3: Marker Lookups (%d queries)\n", *queries)
	start = time.Now()
	found := 0
	for i := 0; i < *queries; i++ {
		m := movieList[r.Intn(len(movieList))]
		if _, ok := provider.MoviePoint(m.ID, 0); ok {
			found++
		}
	}
	lookupDuration := time.Since(start)
	fmt.Printf("  ✅ %d lookups in %v (%.0f lookups/sec, %d hits)\n\n",
		*queries, lookupDuration, float64(*queries)/lookupDuration.Seconds(), found)

	// Benchmark 4: Curve queries
	fmt.Printf("🧵 Benchmark 4: Curve Queries (all actors)\n")
	start = time.Now()
	totalCurves := 0
	for _, actor := range catalog.Actors() {
		totalCurves += len(provider.ActorCurves(actor.ID))
	}
	curveDuration := time.Since(start)
	fmt.Printf("  ✅ %d curves fetched in %v\n\n", totalCurves, curveDuration)

	// Benchmark 5: Export
	fmt.Printf("💾 Benchmark 5: JSON Export\n")
	start = time.Now()
	data, err := provider.ExportJSON()
	if err != nil {
		log.Fatalf("Failed to export layout: %v", err)
	}
	exportDuration := time.Since(start)
	fmt.Printf("  ✅ %d bytes in %v (%.1f MB/sec)\n\n",
		len(data), exportDuration,
		float64(len(data))/1e6/exportDuration.Seconds())

	fmt.Printf("✨ Benchmark complete!\n")
}
