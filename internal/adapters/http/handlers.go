package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"ninegrid.dev/engine/internal/domain"
	"ninegrid.dev/engine/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/conflicts", h.handleConflicts)
	mux.HandleFunc("/api/place", h.handlePlace)
	mux.HandleFunc("/api/complete", h.handleComplete)
	mux.HandleFunc("/api/hint", h.handleHint)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	ID         string       `json:"id,omitempty"`
	Board      domain.Board `json:"board"`
	Solution   domain.Grid  `json:"solution"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	Givens     int          `json:"givens,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func parseDifficulty(s string) domain.Difficulty {
	d, err := domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return domain.Medium
	}
	return d
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decodeBody(w, r, &req) {
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := parseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	p.ID = uuid.NewString()
	writeJSON(w, http.StatusOK, generateResp{
		ID:         p.ID,
		Board:      p.Board(),
		Solution:   p.Solution,
		Seed:       seed,
		Difficulty: diff.String(),
		Givens:     p.Givens.Filled(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}

type solveResp struct {
	Board      domain.Grid `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodeBody(w, r, &req) {
		return
	}
	out, st, err := h.UC.Solve(r.Context(), &req.Board)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Board: out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Conflicts ----

type conflictsReq struct {
	Board domain.Grid `json:"board"`
}

type conflictsResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	var req conflictsReq
	if !decodeBody(w, r, &req) {
		return
	}
	conf, _, err := h.UC.Conflicts(r.Context(), &req.Board)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, conflictsResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, conflictsResp{OK: len(conf) == 0, Conflicts: conf})
}

// ---- Place ----

type placeReq struct {
	Board domain.Grid `json:"board"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Value uint8       `json:"value"`
}

type placeResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Row < 0 || req.Row >= domain.Size || req.Col < 0 || req.Col >= domain.Size || req.Value < 1 || req.Value > 9 {
		writeJSON(w, http.StatusBadRequest, placeResp{Error: "row, col must be 0-8 and value 1-9"})
		return
	}
	ok := h.UC.PlacementOK(&req.Board, req.Row, req.Col, req.Value)
	writeJSON(w, http.StatusOK, placeResp{OK: ok})
}

// ---- Complete ----

type completeReq struct {
	Board    domain.Grid `json:"board"`
	Solution domain.Grid `json:"solution"`
}

type completeResp struct {
	Complete bool   `json:"complete"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeReq
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, completeResp{Complete: h.UC.Complete(&req.Board, &req.Solution)})
}

// ---- Hint ----

type hintReq struct {
	Board   domain.Grid `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	case "xwing":
		return domain.StrategyXWing
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if !decodeBody(w, r, &req) {
		return
	}
	b := &domain.Board{Values: req.Board}
	hh, ok, err := h.UC.Hint(r.Context(), b, parseTier(req.MaxTier))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}
