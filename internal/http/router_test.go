package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "skyrio/internal/config"
	"skyrio/internal/domain/models"
	"skyrio/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type panickingChat struct{}

func (panickingChat) Respond(string, json.RawMessage) (models.ChatReply, error) {
	panic("model backend exploded")
}

type failingChat struct{}

func (failingChat) Respond(string, json.RawMessage) (models.ChatReply, error) {
	return models.ChatReply{}, errors.New("upstream unavailable")
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWith(t, Deps{})
}

func newTestRouterWith(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repositories.NewAirportRepository([]models.Airport{
		{Name: "John F. Kennedy International Airport", Code: "JFK", City: "New York"},
		{Name: "LaGuardia Airport", Code: "LGA", City: "New York"},
		{Name: "Heathrow Airport", Code: "LHR", City: "London"},
	})
	require.NoError(t, err)

	env := intconfig.Env{AtlasReply: intconfig.DefaultAtlasReply}
	deps.Airports = repo
	deps.Logger = zap.NewNop()
	return NewRouter(env, deps)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func airportCodes(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var list []models.Airport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	codes := []string{}
	for _, a := range list {
		codes = append(codes, a.Code)
	}
	return codes
}

func TestSearchAirportsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/airports?q=l", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"JFK", "LGA", "LHR"}, airportCodes(t, w))

	w = do(r, http.MethodGet, "/api/airports?q=LhR", "")
	assert.Equal(t, []string{"LHR"}, airportCodes(t, w))

	w = do(r, http.MethodGet, "/api/airports?q=kennedy", "")
	assert.Equal(t, []string{"JFK"}, airportCodes(t, w))

	w = do(r, http.MethodGet, "/api/airports", "")
	assert.Len(t, airportCodes(t, w), 3)

	w = do(r, http.MethodGet, "/api/airports?q=nowhere", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAtlasChatEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/ai/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"Atlas: Ready. OpenAI connection will generate your travel plan."}`, w.Body.String())

	again := do(r, http.MethodPost, "/api/ai/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, w.Body.String(), again.Body.String())

	for _, body := range []string{`{}`, `{"messages":null}`, `{"messages":"hi"}`, `not json`, ``} {
		w := do(r, http.MethodPost, "/api/ai/chat", body)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "body=%q", body)
		assert.JSONEqf(t, `{"error":"messages required"}`, w.Body.String(), "body=%q", body)
	}
}

func TestAtlasChatUnexpectedFailures(t *testing.T) {
	body := `{"messages":[{"role":"user","content":"hi"}]}`

	r := newTestRouterWith(t, Deps{Chat: panickingChat{}})
	w := do(r, http.MethodPost, "/api/ai/chat", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Atlas server error"}`, w.Body.String())

	r = newTestRouterWith(t, Deps{Chat: failingChat{}})
	w = do(r, http.MethodPost, "/api/ai/chat", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Atlas server error"}`, w.Body.String())
}

func TestBudgetPaceEndpointLargeAmounts(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/budget/pace", `{"planned":1e20}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must not exceed")

	w = do(r, http.MethodPost, "/api/budget/pace", `{"planned":100,"used":1e308,"bookingTotal":1e308}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBudgetPaceEndpointTripDays(t *testing.T) {
	r := newTestRouter(t)

	for body, want := range map[string]float64{
		`{"planned":900}`:                 3,
		`{"planned":900,"tripDays":null}`: 1,
		`{"planned":900,"tripDays":2.5}`:  2.5,
		`{"planned":900,"tripDays":0}`:    1,
	} {
		w := do(r, http.MethodPost, "/api/budget/pace", body)
		require.Equalf(t, http.StatusOK, w.Code, "body=%s", body)

		var out models.BudgetPace
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Equalf(t, want, out.TripDays, "body=%s", body)
		assert.Equal(t, "You’re on track ✨", out.MoodLabel)
	}
}

func TestBudgetPaceEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/budget/pace", `{"planned":1000,"used":700,"bookingTotal":400,"tripDays":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var out models.BudgetPace
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out.OverBudget)
	assert.Equal(t, models.ToneDanger, out.Suggestion.Tone)

	w = do(r, http.MethodPost, "/api/budget/pace", `{"planned":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")

	w = do(r, http.MethodPost, "/api/budget/pace", `{"planned":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_payload")
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = do(r, http.MethodGet, "/api/routes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/ai/chat")

	w = do(r, http.MethodGet, "/api/auth/available", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not found")

	w = do(r, http.MethodOptions, "/api/ai/chat", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
