package model

import (
	"sort"
	"time"
)

// Catalog is the in-memory data source for one layout computation. It owns
// every Person and Movie record and resolves the non-owning references
// between them. Registration order is preserved so that downstream
// consumers iterate deterministically.
//
// A Catalog is not safe for concurrent mutation. Once fully populated it may
// be read from any number of goroutines.
type Catalog struct {
	persons map[PersonID]*Person
	movies  map[MovieID]*Movie

	personOrder []PersonID
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		persons: make(map[PersonID]*Person),
		movies:  make(map[MovieID]*Movie),
	}
}

// AddPerson registers a new person and returns the record.
func (c *Catalog) AddPerson(name string) *Person {
	p := &Person{
		ID:   NewPersonID(),
		Name: name,
	}
	c.persons[p.ID] = p
	c.personOrder = append(c.personOrder, p.ID)
	return p
}

// AddMovie registers a new movie and returns the record. director may be the
// zero PersonID when unknown; it is stored as given and resolved lazily, so
// it may also name a person never registered with this catalog.
func (c *Catalog) AddMovie(title string, released time.Time, director PersonID) *Movie {
	m := &Movie{
		ID:          NewMovieID(),
		Title:       title,
		ReleaseDate: released,
		Director:    director,
	}
	c.movies[m.ID] = m
	return m
}

// AddRole appends a starred-in credit to an actor's filmography. The actor
// must exist; the movie reference is stored as given and resolved only when
// the filmography is consumed, mirroring its non-owning nature.
func (c *Catalog) AddRole(actor PersonID, movie MovieID) error {
	p, ok := c.persons[actor]
	if !ok {
		return PersonNotFoundError(actor)
	}
	p.starredIn = append(p.starredIn, movie)
	return nil
}

// Person resolves a person reference. The second result reports whether the
// reference resolved.
func (c *Catalog) Person(id PersonID) (*Person, bool) {
	p, ok := c.persons[id]
	return p, ok
}

// Movie resolves a movie reference. The second result reports whether the
// reference resolved.
func (c *Catalog) Movie(id MovieID) (*Movie, bool) {
	m, ok := c.movies[id]
	return m, ok
}

// Director resolves a movie's director reference. Returns false for movies
// with no director recorded and for references the catalog cannot resolve.
func (c *Catalog) Director(m *Movie) (*Person, bool) {
	if m.Director.IsZero() {
		return nil, false
	}
	p, ok := c.persons[m.Director]
	return p, ok
}

// Actors returns every person with at least one starred-in credit, in
// registration order. The order is stable across calls, which downstream
// layout computations rely on for reproducibility.
func (c *Catalog) Actors() []*Person {
	var out []*Person
	for _, id := range c.personOrder {
		p := c.persons[id]
		if len(p.starredIn) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Movies returns every registered movie, sorted by release date with title
// as the tiebreaker.
func (c *Catalog) Movies() []*Movie {
	out := make([]*Movie, 0, len(c.movies))
	for _, m := range c.movies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ReleaseDate.Equal(out[j].ReleaseDate) {
			return out[i].ReleaseDate.Before(out[j].ReleaseDate)
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// Directed returns the movies a person directed, sorted by release date with
// title as the tiebreaker.
func (c *Catalog) Directed(person PersonID) []*Movie {
	var out []*Movie
	for _, m := range c.movies {
		if m.Director == person && !person.IsZero() {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ReleaseDate.Equal(out[j].ReleaseDate) {
			return out[i].ReleaseDate.Before(out[j].ReleaseDate)
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// NumPersons returns the number of registered persons.
func (c *Catalog) NumPersons() int {
	return len(c.persons)
}

// NumMovies returns the number of registered movies.
func (c *Catalog) NumMovies() int {
	return len(c.movies)
}
