package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecraft/flowengine/internal/classifier"
	"github.com/coursecraft/flowengine/internal/flow"
	"github.com/coursecraft/flowengine/internal/flowgraph"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	g := flowgraph.New(
		[]flowgraph.Node{
			{ID: "cond1", Kind: flowgraph.KindCondition, Condition: &flowgraph.ConditionConfig{
				ConditionType:        flowgraph.ConditionPerformance,
				PerformanceThreshold: 70,
				MasteryPathLabel:     "Mastery Path",
				NovelPathLabel:       "Novel Path",
			}},
			{ID: "deadend", Kind: flowgraph.KindCondition, Condition: &flowgraph.ConditionConfig{
				ConditionType:        flowgraph.ConditionPerformance,
				PerformanceThreshold: 0,
			}},
			{ID: "m", Kind: flowgraph.KindContent},
			{ID: "n", Kind: flowgraph.KindContent},
		},
		[]flowgraph.Connection{
			{From: "cond1", To: "m", Label: "mastery"},
			{From: "cond1", To: "n", Label: "novel"},
		},
	)

	return New(Options{
		Orchestrator: flow.NewOrchestrator(classifier.NewGateway(nil), nil),
		Graphs:       StaticSource{"act-1": g},
	})
}

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func TestClassifyEndpoint_MasteryPath(t *testing.T) {
	s := testServer(t)

	// 214 characters, 70 words, contains "because": heuristic 85.
	response := strings.Repeat("ab ", 69) + "because"
	body, err := json.Marshal(map[string]any{
		"nodeId":          "cond1",
		"userId":          "user-1",
		"studentResponse": response,
	})
	require.NoError(t, err)

	w := postJSON(t, s, "/v1/activities/act-1/classify", string(body))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ShouldTakeMasteryPath bool    `json:"shouldTakeMasteryPath"`
		Confidence            float64 `json:"confidence"`
		Reasoning             string  `json:"reasoning"`
		PathLabel             string  `json:"pathLabel"`
		NextNodeID            *string `json:"nextNodeId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.ShouldTakeMasteryPath)
	assert.Equal(t, classifier.ReasoningSimple, resp.Reasoning)
	assert.Equal(t, "Mastery Path", resp.PathLabel)
	require.NotNil(t, resp.NextNodeID)
	assert.Equal(t, "m", *resp.NextNodeID)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestClassifyEndpoint_NullNextNodeForDeadEnd(t *testing.T) {
	s := testServer(t)

	w := postJSON(t, s, "/v1/activities/act-1/classify",
		`{"nodeId": "deadend", "studentResponse": "x"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["nextNodeId"]))
}

func TestClassifyEndpoint_NotFound(t *testing.T) {
	s := testServer(t)

	w := postJSON(t, s, "/v1/activities/ghost/classify", `{"nodeId": "cond1", "studentResponse": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown activity")

	w = postJSON(t, s, "/v1/activities/act-1/classify", `{"nodeId": "ghost", "studentResponse": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown node")

	// Content node is not classifiable either.
	w = postJSON(t, s, "/v1/activities/act-1/classify", `{"nodeId": "m", "studentResponse": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code, "content node")
}

func TestClassifyEndpoint_BadRequest(t *testing.T) {
	s := testServer(t)

	w := postJSON(t, s, "/v1/activities/act-1/classify", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "malformed body")

	w = postJSON(t, s, "/v1/activities/act-1/classify", `{"studentResponse": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing nodeId")

	w = postJSON(t, s, "/v1/activities/act-1/classify", `{"nodeId": "cond1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing studentResponse")

	w = postJSON(t, s, "/v1/activities/act-1/classify", `{"nodeId": "cond1", "studentResponse": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty studentResponse")

	w = postJSON(t, s, "/v1/activities/act-1/classify", `{"nodeId": "cond1", "studentResponse": "x", "threshold": 150}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "out-of-range threshold")
}

func TestPhaseEndpoint(t *testing.T) {
	s := testServer(t)

	w := postJSON(t, s, "/v1/activities/act-1/phase",
		`{"sessionId": "sess-1", "phase": "quiz", "score": 85}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp phaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Advanced)
	assert.Equal(t, "mastery_check", resp.ToPhase)

	w = postJSON(t, s, "/v1/activities/act-1/phase", `{"phase": "warmup", "score": 100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown phase")
}

func TestQuizEndpoint_UnavailableWithoutProvider(t *testing.T) {
	s := testServer(t)

	w := postJSON(t, s, "/v1/activities/act-1/quiz", `{"title": "Phototropism"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDecisionsEndpoint_UnavailableWithoutStore(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/decisions", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthz(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
