package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/douglyuckling/movievis/pkg/layout"
	"github.com/douglyuckling/movievis/pkg/model"
	"github.com/douglyuckling/movievis/pkg/validation"
)

// View structs handed to field resolvers as p.Source. Layout values are
// flattened into plain floats so the schema never leaks geometry types.
type pointView struct {
	X, Y, Z float64
}

type segmentView struct {
	P0, P1, P2, P3 pointView
}

type curveView struct {
	Movies   []string
	Split    bool
	Segments []segmentView
}

// GenerateSchema builds the GraphQL schema over a catalog and its computed
// layout. The schema is read-only; all mutation happens through the catalog
// before the layout is built.
func GenerateSchema(catalog *model.Catalog, provider *layout.Provider) (graphql.Schema, error) {
	pointType := createPointType()
	segmentType := createSegmentType(pointType)
	curveType := createCurveType(segmentType)
	personType := createPersonType()
	movieType := createMovieType(catalog, provider, personType, pointType)
	actorType := createActorType(catalog, provider, movieType, curveType)
	statsType := createStatsType()

	queryFields := graphql.Fields{
		"health": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return "OK", nil
			},
		},
		"actor": &graphql.Field{
			Type: actorType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				raw, ok := p.Args["id"].(string)
				if !ok {
					return nil, fmt.Errorf("id argument is required")
				}
				id, err := parsePersonID(raw)
				if err != nil {
					return nil, err
				}
				person, found := catalog.Person(id)
				if !found {
					return nil, nil
				}
				return person, nil
			},
		},
		"actors": &graphql.Field{
			Type: graphql.NewList(actorType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return catalog.Actors(), nil
			},
		},
		"movie": &graphql.Field{
			Type: movieType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				raw, ok := p.Args["id"].(string)
				if !ok {
					return nil, fmt.Errorf("id argument is required")
				}
				id, err := parseMovieID(raw)
				if err != nil {
					return nil, err
				}
				movie, found := catalog.Movie(id)
				if !found {
					return nil, nil
				}
				return movie, nil
			},
		},
		"movies": &graphql.Field{
			Type: graphql.NewList(movieType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return catalog.Movies(), nil
			},
		},
		"curves": &graphql.Field{
			Type: graphql.NewList(curveType),
			Args: graphql.FieldConfigArgument{
				"actorId": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				raw, ok := p.Args["actorId"].(string)
				if !ok {
					return nil, fmt.Errorf("actorId argument is required")
				}
				req := validation.CurveQueryRequest{ActorID: raw}
				if err := validation.ValidateCurveQueryRequest(&req); err != nil {
					return nil, err
				}
				uid, err := uuid.Parse(raw)
				if err != nil {
					return nil, fmt.Errorf("invalid actorId %q: %w", raw, err)
				}
				return curveViews(provider, model.PersonID(uid)), nil
			},
		},
		"layoutStats": &graphql.Field{
			Type: statsType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return provider.Stats(), nil
			},
		},
		"yearPosition": &graphql.Field{
			Type: graphql.Float,
			Args: graphql.FieldConfigArgument{
				"year": &graphql.ArgumentConfig{Type: graphql.Float},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				year, ok := p.Args["year"].(float64)
				if !ok {
					return nil, fmt.Errorf("year argument is required")
				}
				return provider.TimeScale().PositionForYear(year), nil
			},
		},
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields,
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}

func createPointType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Point",
		Fields: graphql.Fields{
			"x": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pt, ok := p.Source.(pointView); ok {
						return pt.X, nil
					}
					return nil, nil
				},
			},
			"y": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pt, ok := p.Source.(pointView); ok {
						return pt.Y, nil
					}
					return nil, nil
				},
			},
			"z": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if pt, ok := p.Source.(pointView); ok {
						return pt.Z, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func createSegmentType(pointType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Segment",
		Fields: graphql.Fields{
			"p0": &graphql.Field{
				Type: pointType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if seg, ok := p.Source.(segmentView); ok {
						return seg.P0, nil
					}
					return nil, nil
				},
			},
			"p1": &graphql.Field{
				Type: pointType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if seg, ok := p.Source.(segmentView); ok {
						return seg.P1, nil
					}
					return nil, nil
				},
			},
			"p2": &graphql.Field{
				Type: pointType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if seg, ok := p.Source.(segmentView); ok {
						return seg.P2, nil
					}
					return nil, nil
				},
			},
			"p3": &graphql.Field{
				Type: pointType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if seg, ok := p.Source.(segmentView); ok {
						return seg.P3, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func createCurveType(segmentType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Curve",
		Fields: graphql.Fields{
			"movies": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if cv, ok := p.Source.(curveView); ok {
						return cv.Movies, nil
					}
					return nil, nil
				},
			},
			"split": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if cv, ok := p.Source.(curveView); ok {
						return cv.Split, nil
					}
					return nil, nil
				},
			},
			"segments": &graphql.Field{
				Type: graphql.NewList(segmentType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if cv, ok := p.Source.(curveView); ok {
						return cv.Segments, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func createPersonType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Person",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if person, ok := p.Source.(*model.Person); ok {
						return person.ID.String(), nil
					}
					return nil, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if person, ok := p.Source.(*model.Person); ok {
						return person.Name, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func createMovieType(catalog *model.Catalog, provider *layout.Provider, personType, pointType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Movie",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if movie, ok := p.Source.(*model.Movie); ok {
						return movie.ID.String(), nil
					}
					return nil, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if movie, ok := p.Source.(*model.Movie); ok {
						return movie.Title, nil
					}
					return nil, nil
				},
			},
			"released": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if movie, ok := p.Source.(*model.Movie); ok {
						return movie.ReleaseDate.Format("2006-01-02"), nil
					}
					return nil, nil
				},
			},
			"director": &graphql.Field{
				Type: personType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, ok := p.Source.(*model.Movie)
					if !ok {
						return nil, nil
					}
					director, found := catalog.Director(movie)
					if !found {
						return nil, nil
					}
					return director, nil
				},
			},
			"position": &graphql.Field{
				Type: pointType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					movie, ok := p.Source.(*model.Movie)
					if !ok {
						return nil, nil
					}
					pt, found := provider.MoviePoint(movie.ID, 0)
					if !found {
						return nil, nil
					}
					return pointView{X: pt.X, Y: pt.Y, Z: pt.Z}, nil
				},
			},
		},
	})
}

func createActorType(catalog *model.Catalog, provider *layout.Provider, movieType, curveType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Actor",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if person, ok := p.Source.(*model.Person); ok {
						return person.ID.String(), nil
					}
					return nil, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if person, ok := p.Source.(*model.Person); ok {
						return person.Name, nil
					}
					return nil, nil
				},
			},
			"movies": &graphql.Field{
				Type: graphql.NewList(movieType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					person, ok := p.Source.(*model.Person)
					if !ok {
						return nil, nil
					}
					var movies []*model.Movie
					for _, id := range person.Filmography() {
						if movie, found := catalog.Movie(id); found {
							movies = append(movies, movie)
						}
					}
					return movies, nil
				},
			},
			"curves": &graphql.Field{
				Type: graphql.NewList(curveType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					person, ok := p.Source.(*model.Person)
					if !ok {
						return nil, nil
					}
					return curveViews(provider, person.ID), nil
				},
			},
		},
	})
}

func createStatsType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "LayoutStats",
		Fields: graphql.Fields{
			"actorsProcessed": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if st, ok := p.Source.(layout.Stats); ok {
						return st.ActorsProcessed, nil
					}
					return nil, nil
				},
			},
			"curvesBuilt": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if st, ok := p.Source.(layout.Stats); ok {
						return st.CurvesBuilt, nil
					}
					return nil, nil
				},
			},
			"pairGroups": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if st, ok := p.Source.(layout.Stats); ok {
						return st.PairGroups, nil
					}
					return nil, nil
				},
			},
			"groupsDiverged": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if st, ok := p.Source.(layout.Stats); ok {
						return st.GroupsDiverged, nil
					}
					return nil, nil
				},
			},
			"directorsAssigned": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if st, ok := p.Source.(layout.Stats); ok {
						return st.DirectorsAssigned, nil
					}
					return nil, nil
				},
			},
			"skippedMovieRefs": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if st, ok := p.Source.(layout.Stats); ok {
						return st.SkippedMovieRefs, nil
					}
					return nil, nil
				},
			},
		},
	})
}

// curveViews flattens an actor's curves into resolver-friendly values.
func curveViews(provider *layout.Provider, actor model.PersonID) []curveView {
	curves := provider.ActorCurves(actor)
	out := make([]curveView, 0, len(curves))
	for _, ac := range curves {
		cv := curveView{
			Movies: []string{ac.Pair().First().String(), ac.Pair().Second().String()},
			Split:  ac.Split(),
		}
		for _, seg := range ac.Curves() {
			cv.Segments = append(cv.Segments, segmentView{
				P0: pointView{X: seg.P0.X, Y: seg.P0.Y, Z: seg.P0.Z},
				P1: pointView{X: seg.P1.X, Y: seg.P1.Y, Z: seg.P1.Z},
				P2: pointView{X: seg.P2.X, Y: seg.P2.Y, Z: seg.P2.Z},
				P3: pointView{X: seg.P3.X, Y: seg.P3.Y, Z: seg.P3.Z},
			})
		}
		out = append(out, cv)
	}
	return out
}

func parsePersonID(raw string) (model.PersonID, error) {
	if err := validation.ValidateIDString(raw); err != nil {
		return model.PersonID{}, err
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return model.PersonID{}, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return model.PersonID(uid), nil
}

func parseMovieID(raw string) (model.MovieID, error) {
	if err := validation.ValidateIDString(raw); err != nil {
		return model.MovieID{}, err
	}
	uid, err := uuid.Parse(raw)
	if err != nil {
		return model.MovieID{}, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	return model.MovieID(uid), nil
}
