package main

import (
	"fmt"
	"log"
	"time"

	"github.com/douglyuckling/movievis/pkg/layout"
	"github.com/douglyuckling/movievis/pkg/model"
)

func main() {
	fmt.Println("🎬 movievis - movie timeline layout demo")

	// Build the catalog
	fmt.Println("\n📇 Building the catalog...")
	catalog := model.NewCatalog()

	adler := catalog.AddPerson("Nora Adler")
	osei := catalog.AddPerson("Victor Osei")
	fmt.Printf("  Registered directors: %s, %s\n", adler.Name, osei.Name)

	lanterns := catalog.AddMovie("Paper Lanterns", date(1996, 6, 21), adler.ID)
	meridian := catalog.AddMovie("The Long Meridian", date(1999, 11, 5), adler.ID)
	salt := catalog.AddMovie("Salt and Orbit", date(2003, 3, 14), osei.ID)
	engines := catalog.AddMovie("Quiet Engines", date(2006, 9, 8), osei.ID)
	for _, m := range []*model.Movie{lanterns, meridian, salt, engines} {
		director, _ := catalog.Director(m)
		fmt.Printf("  Added movie: %s (%s, dir. %s)\n",
			m.Title, m.ReleaseDate.Format("2006-01-02"), director.Name)
	}

	iris := catalog.AddPerson("Iris Malloy")
	dev := catalog.AddPerson("Dev Chandra")
	sofia := catalog.AddPerson("Sofia Brandt")

	cast(catalog, iris, lanterns, meridian, salt, engines)
	cast(catalog, dev, lanterns, meridian, salt)
	cast(catalog, sofia, meridian, salt)
	for _, actor := range catalog.Actors() {
		fmt.Printf("  Cast %s in %d movies\n", actor.Name, len(actor.Filmography()))
	}

	// Compute the layout
	fmt.Println("\n📐 Computing the layout...")
	start := time.Now()
	provider, err := layout.New(catalog)
	if err != nil {
		log.Fatalf("Failed to build layout: %v", err)
	}
	fmt.Printf("  ✅ Layout built in %v\n", time.Since(start))

	stats := provider.Stats()
	fmt.Println("\n📊 Layout statistics:")
	fmt.Printf("  Actors processed:   %d\n", stats.ActorsProcessed)
	fmt.Printf("  Curves built:       %d\n", stats.CurvesBuilt)
	fmt.Printf("  Pair groups:        %d\n", stats.PairGroups)
	fmt.Printf("  Groups diverged:    %d\n", stats.GroupsDiverged)
	fmt.Printf("  Director columns:   %d\n", stats.DirectorsAssigned)

	// Movie markers
	fmt.Println("\n🗺  Movie markers:")
	for _, m := range catalog.Movies() {
		pt, _ := provider.MoviePoint(m.ID, 0)
		fmt.Printf("  %-18s (%.3f, %.3f, %.3f)\n", m.Title, pt.X, pt.Y, pt.Z)
	}

	// Year grid lines
	fmt.Println("\n📈 Year grid positions:")
	scale := provider.TimeScale()
	for _, year := range []float64{1990, 1997, 2005} {
		fmt.Printf("  %.0f -> %.4f\n", year, scale.PositionForYear(year))
	}

	// One actor's curves in detail
	fmt.Printf("\n🧵 Curves for %s:\n", iris.Name)
	for i, ac := range provider.ActorCurves(iris.ID) {
		first, _ := catalog.Movie(ac.Pair().First())
		second, _ := catalog.Movie(ac.Pair().Second())
		shape := "whole"
		if ac.Split() {
			shape = "split"
		}
		fmt.Printf("  %d. %s <-> %s: %s, %d segment(s)\n",
			i+1, first.Title, second.Title, shape, len(ac.Curves()))
	}

	// Export for a renderer
	fmt.Println("\n💾 Exporting layout...")
	data, err := provider.ExportJSON()
	if err != nil {
		log.Fatalf("Failed to export layout: %v", err)
	}
	fmt.Printf("  ✅ Export ready: %d bytes of JSON\n", len(data))

	fmt.Println("\n✨ Demo complete!")
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func cast(catalog *model.Catalog, actor *model.Person, movies ...*model.Movie) {
	for _, m := range movies {
		if err := catalog.AddRole(actor.ID, m.ID); err != nil {
			log.Fatalf("Failed to cast %s in %s: %v", actor.Name, m.Title, err)
		}
	}
}
