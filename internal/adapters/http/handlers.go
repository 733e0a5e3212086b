package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"svw.info/dominosum/internal/domain"
	"svw.info/dominosum/internal/game"
	"svw.info/dominosum/internal/usecase"
)

// Handler exposes the puzzle over a small JSON API. The core is single
// threaded, so the handler serializes all access behind one mutex and keys
// live games by a server-issued id.
type Handler struct {
	UC *usecase.Service

	mu    sync.Mutex
	games map[string]*game.Puzzle
}

func New(uc *usecase.Service) *Handler {
	return &Handler{UC: uc, games: make(map[string]*game.Puzzle)}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/select", h.handleSelect)
	mux.HandleFunc("/api/click", h.handleClick)
	mux.HandleFunc("/api/undo", h.handleUndo)
	mux.HandleFunc("/api/restart", h.handleRestart)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/state", h.handleState)
}

// ---- New / Restart ----

type newReq struct {
	Seed int64 `json:"seed,omitempty"`
}

type newResp struct {
	ID         string                 `json:"id,omitempty"`
	Targets    [domain.BlockCount]int `json:"targets"`
	Snapshot   game.Snapshot          `json:"snapshot"`
	Seed       int64                  `json:"seed,omitempty"`
	DurationMs int64                  `json:"durationMs,omitempty"`
	Nodes      int                    `json:"nodes,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.NewGame(r.Context(), seed)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	id := strconv.FormatInt(time.Now().UnixNano(), 10)
	h.mu.Lock()
	h.games[id] = p
	h.mu.Unlock()
	_ = json.NewEncoder(w).Encode(newResp{
		ID:         id,
		Targets:    p.Targets(),
		Snapshot:   p.Snapshot(),
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

type restartReq struct {
	ID   string `json:"id"`
	Seed int64  `json:"seed,omitempty"`
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req restartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(opResp{Error: "invalid JSON or missing id"})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.games[req.ID]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(opResp{Error: "unknown game id"})
		return
	}
	up, _, err := h.UC.Restart(r.Context(), p, seed)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(opResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(opResp{Message: up.Message, Snapshot: up.Snapshot})
}

// ---- Select / Click / Undo ----

type opResp struct {
	Message  string        `json:"message,omitempty"`
	Snapshot game.Snapshot `json:"snapshot"`
	Error    string        `json:"error,omitempty"`
}

type selectReq struct {
	ID     string `json:"id"`
	Domino int    `json:"domino"`
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(opResp{Error: "invalid JSON or missing id"})
		return
	}
	h.withGame(w, req.ID, func(p *game.Puzzle) game.Update {
		return p.SelectDomino(req.Domino)
	})
}

type clickReq struct {
	ID  string `json:"id"`
	Row int    `json:"row"`
	Col int    `json:"col"`
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req clickReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(opResp{Error: "invalid JSON or missing id"})
		return
	}
	h.withGame(w, req.ID, func(p *game.Puzzle) game.Update {
		return p.ClickCell(req.Row, req.Col)
	})
}

type undoReq struct {
	ID string `json:"id"`
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req undoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(opResp{Error: "invalid JSON or missing id"})
		return
	}
	h.withGame(w, req.ID, func(p *game.Puzzle) game.Update {
		return p.Undo()
	})
}

// withGame runs one operation under the session lock and writes the update.
func (h *Handler) withGame(w http.ResponseWriter, id string, op func(*game.Puzzle) game.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.games[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(opResp{Error: "unknown game id"})
		return
	}
	up := op(p)
	_ = json.NewEncoder(w).Encode(opResp{Message: up.Message, Snapshot: up.Snapshot})
}

// ---- Hint ----

type hintReq struct {
	ID string `json:"id"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON or missing id"})
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.games[req.ID]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "unknown game id"})
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), p)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: found, Hint: hh})
}

// ---- State ----

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(opResp{Error: "missing id"})
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.games[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(opResp{Error: "unknown game id"})
		return
	}
	_ = json.NewEncoder(w).Encode(opResp{Snapshot: p.Snapshot()})
}
