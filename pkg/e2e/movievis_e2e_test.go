package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglyuckling/movievis/pkg/api"
	"github.com/douglyuckling/movievis/pkg/layout"
	"github.com/douglyuckling/movievis/pkg/model"
)

// exportedLayout mirrors the JSON the /layout endpoint serves.
type exportedLayout struct {
	Movies []exportedMovie `json:"movies"`
	Actors []exportedActor `json:"actors"`
}

type exportedMovie struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Released string     `json:"released"`
	Position [3]float64 `json:"position"`
}

type exportedActor struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Curves []exportedCurve `json:"curves"`
}

type exportedCurve struct {
	Movies   [2]string       `json:"movies"`
	Split    bool            `json:"split"`
	Segments [][4][3]float64 `json:"segments"`
}

type fixture struct {
	catalog  *model.Catalog
	provider *layout.Provider
	maya     *model.Person
	theo     *model.Person
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// buildFixture seeds a catalog where two actors share one movie pair, so
// the overlap resolution has work to do.
func buildFixture(t *testing.T) *fixture {
	t.Helper()

	c := model.NewCatalog()
	d1 := c.AddPerson("Lena Hart")
	d2 := c.AddPerson("Paulo Reyes")
	m1 := c.AddMovie("Arrival at Dawn", date(2000, 3, 10), d1.ID)
	m2 := c.AddMovie("Winter Sky", date(2002, 7, 22), d1.ID)
	m3 := c.AddMovie("Glass Harbor", date(2004, 11, 5), d2.ID)

	maya := c.AddPerson("Maya Chen")
	theo := c.AddPerson("Theo Brandt")
	for _, mv := range []*model.Movie{m1, m2, m3} {
		require.NoError(t, c.AddRole(maya.ID, mv.ID))
	}
	for _, mv := range []*model.Movie{m1, m2} {
		require.NoError(t, c.AddRole(theo.ID, mv.ID))
	}

	p, err := layout.New(c)
	require.NoError(t, err, "layout should build for a well-formed catalog")

	return &fixture{catalog: c, provider: p, maya: maya, theo: theo}
}

func startTestServer(t *testing.T, fx *fixture) *httptest.Server {
	t.Helper()

	srv, err := api.NewServer(fx.catalog, fx.provider, api.DefaultServerConfig())
	require.NoError(t, err, "server should start over a built layout")

	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func postGraphQL(t *testing.T, baseURL, query string) map[string]interface{} {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"query": query})
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/graphql", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Data   map[string]interface{}   `json:"data"`
		Errors []map[string]interface{} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.Empty(t, decoded.Errors, "query should succeed: %s", query)
	return decoded.Data
}

func pointDistance(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// TestVisualizationWorkflow walks the full pipeline: seed a catalog,
// compute the layout, serve it, and read it back through every surface.
func TestVisualizationWorkflow(t *testing.T) {
	t.Log("=== E2E: catalog to served layout ===")

	t.Log("Step 1: Building the catalog...")
	fx := buildFixture(t)
	t.Logf("✓ Catalog holds %d persons and %d movies", fx.catalog.NumPersons(), fx.catalog.NumMovies())

	t.Log("Step 2: Checking the computed layout...")
	st := fx.provider.Stats()
	assert.Equal(t, 2, st.ActorsProcessed, "both actors should be processed")
	assert.Equal(t, 3, st.CurvesBuilt, "three filmography hops, three curves")
	assert.Equal(t, 2, st.PairGroups, "two distinct movie pairs")
	assert.Equal(t, 1, st.GroupsDiverged, "only the shared pair needs spreading")
	t.Logf("✓ Built %d curves across %d pair groups", st.CurvesBuilt, st.PairGroups)

	t.Log("Step 3: Starting the API server...")
	server := startTestServer(t, fx)
	t.Logf("✓ Server listening at %s", server.URL)

	t.Log("Step 4: Health check...")
	var health struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	getJSON(t, server.URL+"/health", &health)
	assert.Equal(t, "healthy", health.Status)
	t.Logf("✓ Server healthy, version %s", health.Version)

	t.Log("Step 5: Querying actors over GraphQL...")
	data := postGraphQL(t, server.URL, `{ actors { name curves { split } } }`)
	actors := data["actors"].([]interface{})
	require.Len(t, actors, 2, "both actors should be listed")
	t.Logf("✓ Found %d actors", len(actors))

	t.Log("Step 6: Querying one actor's curves...")
	data = postGraphQL(t, server.URL, fmt.Sprintf(
		`{ curves(actorId: %q) { split segments { p0 { x } } } }`, fx.theo.ID))
	curves := data["curves"].([]interface{})
	require.Len(t, curves, 1, "Theo has a single filmography hop")
	theoCurve := curves[0].(map[string]interface{})
	assert.Equal(t, true, theoCurve["split"], "shared-pair curve should be split")
	assert.Len(t, theoCurve["segments"], 2, "split curve has two halves")
	t.Log("✓ Curve query matches the layout")

	t.Log("Step 7: Fetching the full layout export...")
	var doc exportedLayout
	getJSON(t, server.URL+"/layout", &doc)
	require.Len(t, doc.Movies, 3)
	require.Len(t, doc.Actors, 2)

	markers := make(map[string][3]float64, len(doc.Movies))
	for _, m := range doc.Movies {
		markers[m.ID] = m.Position
		assert.Zero(t, m.Position[2], "markers sit on the z=0 plane")
	}

	var mayaExport, theoExport *exportedActor
	for i := range doc.Actors {
		switch doc.Actors[i].Name {
		case "Maya Chen":
			mayaExport = &doc.Actors[i]
		case "Theo Brandt":
			theoExport = &doc.Actors[i]
		}
	}
	require.NotNil(t, mayaExport)
	require.NotNil(t, theoExport)
	require.Len(t, mayaExport.Curves, 2)
	require.Len(t, theoExport.Curves, 1)

	// Both curves over the shared pair were subdivided; the second hop
	// had no company and stays whole.
	sharedMaya := mayaExport.Curves[0]
	sharedTheo := theoExport.Curves[0]
	assert.True(t, sharedMaya.Split)
	assert.True(t, sharedTheo.Split)
	assert.False(t, mayaExport.Curves[1].Split)
	require.Len(t, sharedMaya.Segments, 2)
	require.Len(t, sharedTheo.Segments, 2)
	t.Log("✓ Export shape matches the layout")

	t.Log("Step 8: Verifying the spread at the shared pair...")
	// The curves meet their movies exactly; only the midpoints separate.
	onMarker := func(pt [3]float64, pair [2]string) bool {
		return pt == markers[pair[0]] || pt == markers[pair[1]]
	}
	assert.True(t, onMarker(sharedMaya.Segments[0][0], sharedMaya.Movies), "curve start anchored on a marker")
	assert.True(t, onMarker(sharedMaya.Segments[1][3], sharedMaya.Movies), "curve end anchored on a marker")
	assert.True(t, onMarker(sharedTheo.Segments[0][0], sharedTheo.Movies))
	assert.True(t, onMarker(sharedTheo.Segments[1][3], sharedTheo.Movies))

	mayaJunction := sharedMaya.Segments[0][3]
	theoJunction := sharedTheo.Segments[0][3]
	separation := pointDistance(mayaJunction, theoJunction)
	assert.InDelta(t, 0.05, separation, 1e-9,
		"junctions should sit one divergence step apart")
	t.Logf("✓ Junctions separated by %.4f units", separation)

	t.Log("Step 9: Cross-checking the stats endpoint...")
	var stats struct {
		Movies         int `json:"movies"`
		CurvesBuilt    int `json:"curves_built"`
		GroupsDiverged int `json:"groups_diverged"`
	}
	getJSON(t, server.URL+"/stats", &stats)
	assert.Equal(t, 3, stats.Movies)
	assert.Equal(t, st.CurvesBuilt, stats.CurvesBuilt)
	assert.Equal(t, st.GroupsDiverged, stats.GroupsDiverged)
	t.Log("✓ Stats agree with the provider")

	t.Log("=== E2E: PASSED ===")
}

// TestConcurrentQueries hits the read-only API from many goroutines at
// once. The layout is immutable after build, so every response must agree.
func TestConcurrentQueries(t *testing.T) {
	fx := buildFixture(t)
	server := startTestServer(t, fx)

	numWorkers := 8
	queriesPerWorker := 25
	t.Logf("Spawning %d workers, each issuing %d queries...", numWorkers, queriesPerWorker)

	actorIDs := []string{fx.maya.ID.String(), fx.theo.ID.String()}
	wantCurves := map[string]int{
		fx.maya.ID.String(): 2,
		fx.theo.ID.String(): 1,
	}

	var wg sync.WaitGroup
	errs := make(chan error, numWorkers*queriesPerWorker)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		worker := i
		go func() {
			defer wg.Done()
			for j := 0; j < queriesPerWorker; j++ {
				actorID := actorIDs[(worker+j)%len(actorIDs)]
				query := fmt.Sprintf(`{ curves(actorId: %q) { split } }`, actorID)
				body, _ := json.Marshal(map[string]interface{}{"query": query})

				resp, err := http.Post(server.URL+"/graphql", "application/json", bytes.NewReader(body))
				if err != nil {
					errs <- fmt.Errorf("worker %d: %w", worker, err)
					return
				}
				var decoded struct {
					Data struct {
						Curves []interface{} `json:"curves"`
					} `json:"data"`
					Errors []interface{} `json:"errors"`
				}
				err = json.NewDecoder(resp.Body).Decode(&decoded)
				resp.Body.Close()
				if err != nil {
					errs <- fmt.Errorf("worker %d decode: %w", worker, err)
					return
				}
				if len(decoded.Errors) > 0 {
					errs <- fmt.Errorf("worker %d query errors: %v", worker, decoded.Errors)
					return
				}
				if got := len(decoded.Data.Curves); got != wantCurves[actorID] {
					errs <- fmt.Errorf("worker %d: got %d curves for %s, want %d",
						worker, got, actorID, wantCurves[actorID])
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	var errList []error
	for err := range errs {
		errList = append(errList, err)
	}
	require.Empty(t, errList, "concurrent reads should all succeed")
	t.Logf("✓ %d concurrent queries answered consistently", numWorkers*queriesPerWorker)
}

// TestServerErrorHandling drives the failure paths a browser client can
// trigger.
func TestServerErrorHandling(t *testing.T) {
	fx := buildFixture(t)
	server := startTestServer(t, fx)

	t.Log("Test 1: Malformed JSON body...")
	resp, err := http.Post(server.URL+"/graphql", "application/json",
		bytes.NewBufferString(`{invalid json`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "should reject invalid JSON")
	resp.Body.Close()
	t.Log("  ✓ Invalid JSON rejected")

	t.Log("Test 2: GET on the GraphQL endpoint...")
	resp, err = http.Get(server.URL + "/graphql")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	resp.Body.Close()
	t.Log("  ✓ GET rejected")

	t.Log("Test 3: Unknown query field...")
	body, _ := json.Marshal(map[string]interface{}{"query": `{ nonsense }`})
	resp, err = http.Post(server.URL+"/graphql", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "query errors ride a 200 response")
	var decoded struct {
		Errors []interface{} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	assert.NotEmpty(t, decoded.Errors, "unknown field should be reported")
	t.Log("  ✓ Unknown field reported in errors")

	t.Log("Test 4: Malformed actor ID...")
	body, _ = json.Marshal(map[string]interface{}{"query": `{ curves(actorId: "bogus") { split } }`})
	resp, err = http.Post(server.URL+"/graphql", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decoded.Errors = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	resp.Body.Close()
	assert.NotEmpty(t, decoded.Errors, "id validation failure should be reported")
	t.Log("  ✓ Malformed ID reported in errors")

	t.Log("Test 5: POST on the layout export...")
	resp, err = http.Post(server.URL+"/layout", "application/json", bytes.NewBufferString("{}"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	resp.Body.Close()
	t.Log("  ✓ Export is read-only")
}
