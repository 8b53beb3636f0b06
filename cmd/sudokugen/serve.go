package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokugen/internal/adapters/http"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/session"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var serveFlags struct {
	addr     string
	dataDir  string
	inMemory bool
	logLevel string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveFlags.dataDir, "data", "./data", "puzzle store directory")
	serveCmd.Flags().BoolVar(&serveFlags.inMemory, "in-memory", false, "keep the puzzle store in memory only")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(serveCmd)
}

// requestLogger logs method, path, status, and duration for every request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(serveFlags.logLevel)

	st, err := storage.Open(storage.Config{
		Path:     serveFlags.dataDir,
		InMemory: serveFlags.inMemory,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	// Wire providers -> use cases -> HTTP adapter
	s := solver.NewBacktracking()
	g := generator.New(s)
	v := validator.New()
	uc := usecase.NewService(s, g, v, st)
	sm := session.NewManager(g)
	h := httpadapter.New(uc, sm)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.Register(r)

	srv := &http.Server{
		Addr:              serveFlags.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveFlags.addr, "data", serveFlags.dataDir, "inMemory", serveFlags.inMemory)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
