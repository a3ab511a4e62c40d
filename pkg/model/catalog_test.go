package model

import (
	"errors"
	"testing"
	"time"
)

func TestAddPersonAndResolve(t *testing.T) {
	c := NewCatalog()

	p := c.AddPerson("Peter Sellers")
	if p.ID.IsZero() {
		t.Fatal("AddPerson assigned a zero ID")
	}

	got, ok := c.Person(p.ID)
	if !ok {
		t.Fatal("Person() failed to resolve a registered person")
	}
	if got.Name != "Peter Sellers" {
		t.Errorf("Name = %q, want %q", got.Name, "Peter Sellers")
	}

	if _, ok := c.Person(NewPersonID()); ok {
		t.Error("Person() resolved an unregistered reference")
	}
}

func TestAddMovieAndResolve(t *testing.T) {
	c := NewCatalog()

	d := c.AddPerson("Hal Ashby")
	m := c.AddMovie("Being There", date(1979, 12, 19), d.ID)

	got, ok := c.Movie(m.ID)
	if !ok {
		t.Fatal("Movie() failed to resolve a registered movie")
	}
	if got.Title != "Being There" {
		t.Errorf("Title = %q, want %q", got.Title, "Being There")
	}

	dir, ok := c.Director(got)
	if !ok {
		t.Fatal("Director() failed to resolve a registered director")
	}
	if dir.ID != d.ID {
		t.Errorf("Director = %v, want %v", dir.ID, d.ID)
	}
}

func TestDirectorUnresolvable(t *testing.T) {
	c := NewCatalog()

	// No director recorded at all.
	m1 := c.AddMovie("Untitled", date(1990, 1, 1), PersonID{})
	if _, ok := c.Director(m1); ok {
		t.Error("Director() resolved the zero reference")
	}

	// Director reference never registered with this catalog.
	m2 := c.AddMovie("Orphaned", date(1991, 1, 1), NewPersonID())
	if _, ok := c.Director(m2); ok {
		t.Error("Director() resolved a dangling reference")
	}
}

func TestAddRole(t *testing.T) {
	c := NewCatalog()

	a := c.AddPerson("Shirley MacLaine")
	m := c.AddMovie("Being There", date(1979, 12, 19), PersonID{})

	if err := c.AddRole(a.ID, m.ID); err != nil {
		t.Fatalf("AddRole failed: %v", err)
	}

	fg := a.Filmography()
	if len(fg) != 1 || fg[0] != m.ID {
		t.Errorf("Filmography = %v, want [%v]", fg, m.ID)
	}

	// Unknown actor is an error.
	err := c.AddRole(NewPersonID(), m.ID)
	if err == nil {
		t.Fatal("AddRole accepted an unknown actor")
	}
	if !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("AddRole error = %v, want ErrPersonNotFound", err)
	}

	// A dangling movie reference is stored as-is; it simply fails to
	// resolve later.
	if err := c.AddRole(a.ID, NewMovieID()); err != nil {
		t.Fatalf("AddRole rejected a dangling movie reference: %v", err)
	}
	if got := len(a.Filmography()); got != 2 {
		t.Errorf("Filmography length = %d, want 2", got)
	}
}

func TestFilmographyIsACopy(t *testing.T) {
	c := NewCatalog()
	a := c.AddPerson("Actor")
	m := c.AddMovie("Movie", date(2000, 1, 1), PersonID{})
	c.AddRole(a.ID, m.ID)

	fg := a.Filmography()
	fg[0] = NewMovieID()

	if got := a.Filmography()[0]; got != m.ID {
		t.Error("mutating the returned filmography leaked into the catalog")
	}
}

func TestActorsOrderAndFiltering(t *testing.T) {
	c := NewCatalog()

	a1 := c.AddPerson("First")
	d := c.AddPerson("Director Only")
	a2 := c.AddPerson("Second")

	m := c.AddMovie("Movie", date(2000, 1, 1), d.ID)
	c.AddRole(a2.ID, m.ID)
	c.AddRole(a1.ID, m.ID)

	actors := c.Actors()
	if len(actors) != 2 {
		t.Fatalf("Actors() returned %d persons, want 2", len(actors))
	}

	// Registration order, not role order: a1 was registered before a2.
	if actors[0].ID != a1.ID || actors[1].ID != a2.ID {
		t.Errorf("Actors order = [%s, %s], want [First, Second]",
			actors[0].Name, actors[1].Name)
	}
}

func TestDirected(t *testing.T) {
	c := NewCatalog()

	d := c.AddPerson("Stanley Kubrick")
	other := c.AddPerson("Someone Else")

	c.AddMovie("Eyes Wide Shut", date(1999, 7, 16), d.ID)
	c.AddMovie("Full Metal Jacket", date(1987, 6, 26), d.ID)
	c.AddMovie("Unrelated", date(1990, 1, 1), other.ID)

	directed := c.Directed(d.ID)
	if len(directed) != 2 {
		t.Fatalf("Directed() returned %d movies, want 2", len(directed))
	}
	if directed[0].Title != "Full Metal Jacket" || directed[1].Title != "Eyes Wide Shut" {
		t.Errorf("Directed order = [%s, %s], want release-date order",
			directed[0].Title, directed[1].Title)
	}

	if got := c.Directed(PersonID{}); len(got) != 0 {
		t.Errorf("Directed(zero) = %d movies, want 0", len(got))
	}
}

func TestMoviesSorted(t *testing.T) {
	c := NewCatalog()

	c.AddMovie("Zebra", date(1995, 5, 1), PersonID{})
	c.AddMovie("Apple", date(1995, 5, 1), PersonID{})
	c.AddMovie("Early", date(1990, 1, 1), PersonID{})

	movies := c.Movies()
	if len(movies) != 3 {
		t.Fatalf("Movies() returned %d movies, want 3", len(movies))
	}

	want := []string{"Early", "Apple", "Zebra"}
	for i, m := range movies {
		if m.Title != want[i] {
			t.Errorf("Movies()[%d] = %s, want %s", i, m.Title, want[i])
		}
	}
}

func TestMoviePairOrderingHelper(t *testing.T) {
	a := NewMovieID()
	b := NewMovieID()

	if a.Less(b) == b.Less(a) {
		t.Error("Less must order two distinct IDs one way")
	}
	if a.Less(a) {
		t.Error("Less must be irreflexive")
	}
}

func TestCounts(t *testing.T) {
	c := NewCatalog()
	c.AddPerson("A")
	c.AddPerson("B")
	c.AddMovie("M", date(2000, 1, 1), PersonID{})

	if got := c.NumPersons(); got != 2 {
		t.Errorf("NumPersons = %d, want 2", got)
	}
	if got := c.NumMovies(); got != 1 {
		t.Errorf("NumMovies = %d, want 1", got)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
