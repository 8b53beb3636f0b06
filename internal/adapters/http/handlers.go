package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/session"
	"svw.info/sudokugen/internal/usecase"
)

// Handler exposes the engine and the session layer as a JSON API.
type Handler struct {
	UC       *usecase.Service
	Sessions *session.Manager
}

func New(uc *usecase.Service, sm *session.Manager) *Handler {
	return &Handler{UC: uc, Sessions: sm}
}

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/generate", h.handleGenerate)
	api.POST("/solve", h.handleSolve)
	api.POST("/validate", h.handleValidate)
	api.POST("/game", h.handleNewGame)
	api.GET("/game/:id", h.handleGetGame)
	api.POST("/game/:id/move", h.handleMove)
	api.POST("/save", h.handleSave)
	api.POST("/load", h.handleLoad)
	api.GET("/list", h.handleList)
}

type errorResp struct {
	Error string `json:"error"`
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Grid `json:"board"`
	Solution   domain.Grid `json:"solution"`
	Seed       int64       `json:"seed"`
	Difficulty string      `json:"difficulty"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(c.Request.Context(), seed, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Board:      p.Board,
		Solution:   p.Solution,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Board domain.Grid `json:"board"`
}

type solveResp struct {
	Board      domain.Grid `json:"board"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), req.Board)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnsolvable) || errors.Is(err, domain.ErrOutOfRange) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, solveResp{Board: out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	Board domain.Grid `json:"board"`
}

type validateResp struct {
	OK        bool              `json:"ok"`
	Conflicts []domain.Position `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Sessions ----

type newGameReq struct {
	Difficulty string `json:"difficulty,omitempty"`
}

type gameResp struct {
	ID         string      `json:"id"`
	Difficulty string      `json:"difficulty"`
	Board      domain.Grid `json:"board"`
	Mistakes   int         `json:"mistakes"`
	Score      int         `json:"score"`
}

func (h *Handler) handleNewGame(c *gin.Context) {
	var req newGameReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	s, err := h.Sessions.New(c.Request.Context(), domain.ParseDifficulty(req.Difficulty))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gameResp{
		ID:         s.ID,
		Difficulty: s.Puzzle.Difficulty.String(),
		Board:      s.Board(),
		Mistakes:   s.Mistakes(),
		Score:      s.Score(),
	})
}

func (h *Handler) handleGetGame(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gameResp{
		ID:         s.ID,
		Difficulty: s.Puzzle.Difficulty.String(),
		Board:      s.Board(),
		Mistakes:   s.Mistakes(),
		Score:      s.Score(),
	})
}

type moveReq struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

func (h *Handler) handleMove(c *gin.Context) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResp{Error: err.Error()})
		return
	}
	var req moveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	res, err := s.Move(domain.Position{Row: req.Row, Col: req.Col}, req.Value)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrOutOfRange):
			status = http.StatusBadRequest
		case errors.Is(err, session.ErrCellFixed):
			status = http.StatusConflict
		}
		c.JSON(status, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ---- Save / Load / List ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		c.JSON(http.StatusBadRequest, errorResp{Error: "missing id"})
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, storage.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, errorResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, listResp{Puzzles: metas})
}
