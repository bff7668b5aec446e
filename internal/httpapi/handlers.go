package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coursecraft/flowengine/internal/classifier"
	"github.com/coursecraft/flowengine/internal/flow"
	"github.com/coursecraft/flowengine/internal/phases"
	"github.com/coursecraft/flowengine/internal/quizgen"
	"github.com/coursecraft/flowengine/internal/store"
)

type classifyRequest struct {
	NodeID             string                     `json:"nodeId"`
	UserID             string                     `json:"userId"`
	StudentResponse    string                     `json:"studentResponse"`
	ContextSources     []classifier.ContextSource `json:"contextSources,omitempty"`
	PerformanceHistory []classifier.HistoryEntry  `json:"performanceHistory,omitempty"`
	Threshold          *int                       `json:"threshold,omitempty"`
}

type classifyResponse struct {
	ShouldTakeMasteryPath bool    `json:"shouldTakeMasteryPath"`
	Confidence            float64 `json:"confidence"`
	Reasoning             string  `json:"reasoning"`
	PathLabel             string  `json:"pathLabel"`
	NextNodeID            *string `json:"nextNodeId"`
	DecisionID            string  `json:"decisionId"`
	Method                string  `json:"method"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NodeID == "" {
		writeError(w, http.StatusBadRequest, "nodeId is required")
		return
	}
	if req.StudentResponse == "" {
		writeError(w, http.StatusBadRequest, "studentResponse is required")
		return
	}
	if req.Threshold != nil && (*req.Threshold < 0 || *req.Threshold > 100) {
		writeError(w, http.StatusBadRequest, "threshold must be between 0 and 100")
		return
	}

	g, err := s.graphs.Graph(r.Context(), activityID)
	if err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load activity")
		return
	}

	res, err := s.orchestrator.Advance(r.Context(), g, flow.AdvanceRequest{
		ActivityID:         activityID,
		UserID:             req.UserID,
		NodeID:             req.NodeID,
		StudentResponse:    req.StudentResponse,
		ContextSources:     req.ContextSources,
		PerformanceHistory: req.PerformanceHistory,
		Threshold:          req.Threshold,
	})
	if err != nil {
		if errors.Is(err, flow.ErrNodeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "classification failed")
		return
	}

	resp := classifyResponse{
		ShouldTakeMasteryPath: res.Decision.ShouldTakeMasteryPath,
		Confidence:            res.Decision.Confidence,
		Reasoning:             res.Decision.Reasoning,
		PathLabel:             res.PathLabel,
		DecisionID:            res.DecisionID,
		Method:                string(res.Decision.Method),
	}
	if res.HasNext {
		resp.NextNodeID = &res.NextNodeID
	}
	writeJSON(w, http.StatusOK, resp)
}

type phaseRequest struct {
	SessionID   string              `json:"sessionId"`
	Phase       string              `json:"phase"`
	Score       int                 `json:"score"`
	Answers     map[string]string   `json:"answers,omitempty"`
	Definitions []phases.Definition `json:"definitions,omitempty"`
}

type phaseResponse struct {
	FromPhase string `json:"fromPhase"`
	ToPhase   string `json:"toPhase"`
	Advanced  bool   `json:"advanced"`
}

func (s *Server) handlePhaseAdvance(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "activityID")

	var req phaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !phases.Valid(phases.Phase(req.Phase)) {
		writeError(w, http.StatusBadRequest, "unknown phase")
		return
	}

	out := s.orchestrator.AdvancePhase(r.Context(), flow.PhaseRequest{
		SessionID:   req.SessionID,
		ActivityID:  activityID,
		Phase:       phases.Phase(req.Phase),
		Score:       req.Score,
		Answers:     req.Answers,
		Definitions: req.Definitions,
	})

	writeJSON(w, http.StatusOK, phaseResponse{
		FromPhase: string(out.From),
		ToPhase:   string(out.To),
		Advanced:  out.Advanced,
	})
}

type quizRequest struct {
	Title      string           `json:"title"`
	Sources    []quizgen.Source `json:"sources,omitempty"`
	Count      int              `json:"count,omitempty"`
	Difficulty string           `json:"difficulty,omitempty"`
	Prior      []string         `json:"priorQuestions,omitempty"`
}

func (s *Server) handleQuizGenerate(w http.ResponseWriter, r *http.Request) {
	if s.quizzes == nil {
		writeError(w, http.StatusServiceUnavailable, "quiz generation requires an AI provider")
		return
	}

	activityID := chi.URLParam(r, "activityID")

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	title := req.Title
	if title == "" {
		title = activityID
	}
	questions, err := s.quizzes.Generate(r.Context(), quizgen.GenerateInput{
		ActivityTitle:  title,
		Sources:        req.Sources,
		Count:          req.Count,
		Difficulty:     req.Difficulty,
		PriorQuestions: req.Prior,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, "quiz generation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

type decisionView struct {
	DecisionID            string  `json:"decisionId"`
	UserID                string  `json:"userId"`
	ActivityID            string  `json:"activityId"`
	NodeID                string  `json:"nodeId"`
	Response              string  `json:"response"`
	ShouldTakeMasteryPath bool    `json:"shouldTakeMasteryPath"`
	Confidence            float64 `json:"confidence"`
	Reasoning             string  `json:"reasoning"`
	ThresholdUsed         int     `json:"thresholdUsed"`
	Method                string  `json:"method"`
	CreatedAt             string  `json:"createdAt"`
}

func (s *Server) handleListDecisions(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		writeError(w, http.StatusServiceUnavailable, "decision store not configured")
		return
	}

	q := store.DecisionQuery{
		ActivityID: r.URL.Query().Get("activity_id"),
		UserID:     r.URL.Query().Get("user_id"),
		NodeID:     r.URL.Query().Get("node_id"),
	}
	q.Limit = 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		q.Limit = n
	}

	records, err := s.events.QueryDecisions(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to query decisions")
		return
	}

	views := make([]decisionView, 0, len(records))
	for _, rec := range records {
		views = append(views, decisionViewFrom(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"decisions": views})
}

func (s *Server) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		writeError(w, http.StatusServiceUnavailable, "decision store not configured")
		return
	}

	rec, err := s.events.GetDecision(r.Context(), chi.URLParam(r, "decisionID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load decision")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "decision not found")
		return
	}
	writeJSON(w, http.StatusOK, decisionViewFrom(*rec))
}

func decisionViewFrom(rec store.DecisionRecord) decisionView {
	return decisionView{
		DecisionID:            rec.DecisionID,
		UserID:                rec.UserID,
		ActivityID:            rec.ActivityID,
		NodeID:                rec.NodeID,
		Response:              rec.Response,
		ShouldTakeMasteryPath: rec.ShouldTakeMasteryPath,
		Confidence:            rec.Confidence,
		Reasoning:             rec.Reasoning,
		ThresholdUsed:         rec.ThresholdUsed,
		Method:                rec.Method,
		CreatedAt:             rec.Timestamp.UTC().Format(time.RFC3339),
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
