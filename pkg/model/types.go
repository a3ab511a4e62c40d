// Package model holds the movie-domain records the layout engine consumes:
// persons, movies, and the in-memory catalog that owns them and resolves
// references between them.
package model

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// PersonID uniquely identifies a person. The zero value means "no person"
// and is used for movies whose director is unknown.
type PersonID uuid.UUID

// MovieID uniquely identifies a movie.
type MovieID uuid.UUID

// NewPersonID generates a fresh person identity.
func NewPersonID() PersonID {
	return PersonID(uuid.New())
}

// NewMovieID generates a fresh movie identity.
func NewMovieID() MovieID {
	return MovieID(uuid.New())
}

// String returns the canonical string form of the ID.
func (id PersonID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the ID is the "no person" zero value.
func (id PersonID) IsZero() bool {
	return id == PersonID(uuid.Nil)
}

// String returns the canonical string form of the ID.
func (id MovieID) String() string {
	return uuid.UUID(id).String()
}

// Less provides a total order over movie IDs, used to canonicalize
// unordered movie pairs.
func (id MovieID) Less(other MovieID) bool {
	a := uuid.UUID(id)
	b := uuid.UUID(other)
	return bytes.Compare(a[:], b[:]) < 0
}

// Person is a catalog entry for an actor or director. The starred-in list
// holds movie references in the order roles were recorded; references are
// non-owning and may fail to resolve against the catalog.
type Person struct {
	ID   PersonID
	Name string

	starredIn []MovieID
}

// Filmography returns the movies the person starred in, in the order the
// roles were recorded. The returned slice is a copy.
func (p *Person) Filmography() []MovieID {
	out := make([]MovieID, len(p.starredIn))
	copy(out, p.starredIn)
	return out
}

// Movie is a catalog entry for a single film. Director is a non-owning
// reference; it may be the zero PersonID (director unknown) or name a person
// the catalog cannot resolve.
type Movie struct {
	ID          MovieID
	Title       string
	ReleaseDate time.Time
	Director    PersonID
}
