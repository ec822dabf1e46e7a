package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/pathwise/internal/logger"
)

const ctxKeyErrorKind = "pathwise.error_kind"

// PlanRequester produces wire days for a plan request.
type PlanRequester interface {
	RequestPlan(ctx context.Context, req PlanRequest) ([]WireDay, error)
}

// ErrorBody is the JSON body of every non-200 gateway response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  Kind   `json:"code"`
}

type Handler struct {
	planner PlanRequester
	log     *logger.Logger
}

func NewHandler(planner PlanRequester, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{planner: planner, log: log}
}

// GeneratePlan serves POST /generate-plan.
func (h *Handler) GeneratePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set(ctxKeyErrorKind, string(KindValidation))
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: err.Error(), Code: KindValidation})
		return
	}

	days, err := h.planner.RequestPlan(c.Request.Context(), req)
	if err == nil && len(days) != req.DayCount() {
		err = newError(KindSchemaInvalid, fmt.Errorf("plan has %d days, want %d", len(days), req.DayCount()))
	}
	if err != nil {
		kind := KindOf(err)
		if kind == "" {
			kind = KindUnreachable
		}
		c.Set(ctxKeyErrorKind, string(kind))
		if kind == KindValidation {
			c.JSON(http.StatusInternalServerError, ErrorBody{Error: err.Error(), Code: kind})
			return
		}
		h.log.Error("generate plan failed", "topic", req.Topic, "kind", string(kind), "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Failed to generate curriculum", Code: kind})
		return
	}
	h.log.Debug("plan generated", "topic", req.Topic, "pace", req.Pace, "days", len(days))
	c.JSON(http.StatusOK, days)
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// NewRouter wires middleware and routes.
func NewRouter(cfg ServerConfig, h *Handler, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORS(cfg.CORSOrigins))
	router.Use(RequestLogger(log))

	router.GET("/healthcheck", HealthCheck)
	router.POST("/generate-plan", h.GeneratePlan)
	return router
}

// Server runs the gateway HTTP listener.
type Server struct {
	cfg  ServerConfig
	http *http.Server
	log  *logger.Logger
}

func NewServer(cfg ServerConfig, planner PlanRequester, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	router := NewRouter(cfg, NewHandler(planner, log), log)
	return &Server{
		cfg:  cfg,
		http: &http.Server{Addr: cfg.Addr, Handler: router},
		log:  log,
	}
}

// Handler exposes the router for in-process testing.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("gateway listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info("gateway shutting down")
		return s.http.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
