package httpadapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/session"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := storage.Open(storage.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	s := solver.NewBacktracking()
	g := generator.New(s)
	uc := usecase.NewService(s, g, validator.New(), st)
	h := New(uc, session.NewManager(g))

	r := gin.New()
	h.Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGenerateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate", generateReq{Difficulty: "hard", Seed: 99})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[generateResp](t, w)
	assert.Equal(t, "hard", resp.Difficulty)
	assert.EqualValues(t, 99, resp.Seed)

	lo, hi := domain.Hard.CellsToRemove()
	empty := resp.Board.CountEmpty()
	assert.GreaterOrEqual(t, empty, lo)
	assert.LessOrEqual(t, empty, hi)
	assert.Equal(t, 0, resp.Solution.CountEmpty())

	// same seed, same puzzle
	again := decode[generateResp](t, doJSON(t, r, http.MethodPost, "/api/generate", generateReq{Difficulty: "hard", Seed: 99}))
	assert.Equal(t, resp.Board, again.Board)
}

func TestGenerateEmptyBodyDefaultsEasy(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/generate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "easy", decode[generateResp](t, w).Difficulty)
}

func TestGenerateBadJSON(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveEndpoint(t *testing.T) {
	r := newTestRouter(t)

	gen := decode[generateResp](t, doJSON(t, r, http.MethodPost, "/api/generate", generateReq{Seed: 5}))
	w := doJSON(t, r, http.MethodPost, "/api/solve", solveReq{Board: gen.Board})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	solved := decode[solveResp](t, w)
	assert.Equal(t, 0, solved.Board.CountEmpty())
}

func TestSolveUnsolvable(t *testing.T) {
	r := newTestRouter(t)
	var g domain.Grid
	g[0][0], g[0][1] = 7, 7
	w := doJSON(t, r, http.MethodPost, "/api/solve", solveReq{Board: g})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter(t)
	var g domain.Grid
	g[1][1], g[1][8] = 4, 4
	w := doJSON(t, r, http.MethodPost, "/api/validate", validateReq{Board: g})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[validateResp](t, w)
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestGameFlow(t *testing.T) {
	r := newTestRouter(t)

	game := decode[gameResp](t, doJSON(t, r, http.MethodPost, "/api/game", newGameReq{Difficulty: "easy"}))
	require.NotEmpty(t, game.ID)

	// fetch it back
	w := doJSON(t, r, http.MethodGet, "/api/game/"+game.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// find an empty cell; out-of-range and wrong then correct moves
	var at domain.Position
	found := false
	for row := 0; row < 9 && !found; row++ {
		for col := 0; col < 9 && !found; col++ {
			if game.Board[row][col] == domain.Empty {
				at = domain.Position{Row: row, Col: col}
				found = true
			}
		}
	}
	require.True(t, found)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/game/%s/move", game.ID), moveReq{Row: at.Row, Col: at.Col, Value: 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// probe digits until the solution one is hit; exactly one of 1..9 is correct
	correct := 0
	for v := uint8(1); v <= 9; v++ {
		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/game/%s/move", game.ID), moveReq{Row: at.Row, Col: at.Col, Value: v})
		if w.Code == http.StatusConflict {
			break // cell got filled by the correct probe
		}
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		if decode[session.MoveResult](t, w).Correct {
			correct++
		}
	}
	assert.Equal(t, 1, correct)

	w = doJSON(t, r, http.MethodGet, "/api/game/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	r := newTestRouter(t)

	gen := decode[generateResp](t, doJSON(t, r, http.MethodPost, "/api/generate", generateReq{Difficulty: "medium", Seed: 31}))
	p := domain.Puzzle{
		ID:         "fixture-1",
		Seed:       31,
		Difficulty: domain.Medium,
		Board:      gen.Board,
		Solution:   gen.Solution,
		Name:       "lunch break",
	}

	w := doJSON(t, r, http.MethodPost, "/api/save", p)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "fixture-1", decode[saveResp](t, w).ID)

	w = doJSON(t, r, http.MethodPost, "/api/load", loadReq{ID: "fixture-1"})
	require.Equal(t, http.StatusOK, w.Code)
	loaded := decode[loadResp](t, w)
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, p.Board, loaded.Puzzle.Board)
	assert.Equal(t, "lunch break", loaded.Puzzle.Name)

	w = doJSON(t, r, http.MethodPost, "/api/load", loadReq{ID: "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[listResp](t, w)
	require.Len(t, list.Puzzles, 1)
	assert.Equal(t, "fixture-1", list.Puzzles[0].ID)
}
