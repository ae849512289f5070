// Package server exposes the portfolio engine over HTTP: the content
// document, the visitor event ingest, call-to-action selection, the
// social-proof feed, and the activity views.
package server

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/likhithlanka/pulse/internal/activity"
	"github.com/likhithlanka/pulse/internal/config"
	"github.com/likhithlanka/pulse/internal/content"
	"github.com/likhithlanka/pulse/internal/cta"
	"github.com/likhithlanka/pulse/internal/github"
	"github.com/likhithlanka/pulse/internal/proof"
	"github.com/likhithlanka/pulse/internal/store"
)

// repoCacheTTL bounds how often the repository listing is refetched.
const repoCacheTTL = 10 * time.Minute

// Server wires the engine components behind the HTTP API.
type Server struct {
	cfg      *config.Config
	content  *content.Store
	db       *store.DB
	selector *cta.Selector
	proof    *proof.Scheduler
	loader   *activity.Loader
	github   *github.Client
	sessions *sessionRegistry

	repoMu        sync.Mutex
	repoSummary   *github.RepoSummary
	repoFetchedAt time.Time
}

// New assembles a Server from an opened database and configuration.
func New(cfg *config.Config, db *store.DB) (*Server, error) {
	contentStore := content.NewStore(db.Content())

	targets := cta.Targets{
		LinkedInURL:    contentStore.Get().Links.LinkedIn,
		ResumePath:     cfg.ResumePath,
		ScheduleURL:    cfg.ScheduleURL,
		ProjectsAnchor: "projects",
	}
	selector, err := cta.NewSelector(cta.Options(targets), db.Dismissals())
	if err != nil {
		return nil, err
	}

	scheduler := proof.New(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
	scheduler.InitialDelay = cfg.Proof.InitialDelay
	scheduler.Interval = cfg.Proof.Interval
	scheduler.DisplayDuration = cfg.Proof.DisplayDuration
	scheduler.Chance = cfg.Proof.Chance

	gh := github.NewClient()

	return &Server{
		cfg:      cfg,
		content:  contentStore,
		db:       db,
		selector: selector,
		proof:    scheduler,
		loader:   activity.NewLoader(gh),
		github:   gh,
		sessions: newSessionRegistry(cfg.SessionTTL),
	}, nil
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/content", s.handleGetContent)
		api.PUT("/content", s.handlePutContent)
		api.POST("/content/reset", s.handleResetContent)

		api.POST("/events", s.handlePostEvent)

		api.GET("/cta", s.handleGetCTA)
		api.POST("/cta/:id/dismiss", s.handleDismissCTA)
		api.POST("/cta/:id/accept", s.handleAcceptCTA)

		api.GET("/proof", s.handleGetProof)
		api.GET("/activity", s.handleGetActivity)
		api.GET("/repos", s.handleGetRepos)
	}

	r.GET("/resume", s.handleGetResume)

	return r
}

// Run serves the API until ctx is cancelled, driving the social-proof
// scheduler and session janitor in the background.
func (s *Server) Run(ctx context.Context) error {
	go s.proof.Run(ctx)
	go s.sessions.janitor(ctx)

	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("listening on %s", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
