package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/likhithlanka/pulse/internal/content"
	"github.com/likhithlanka/pulse/internal/cta"
	"github.com/likhithlanka/pulse/internal/engage"
	"github.com/likhithlanka/pulse/internal/github"
	"github.com/likhithlanka/pulse/internal/proof"
	"github.com/likhithlanka/pulse/internal/store"
)

func (s *Server) handleGetContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.content.Get())
}

func (s *Server) handlePutContent(c *gin.Context) {
	var doc content.Content
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.content.Set(doc); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.content.Get())
}

func (s *Server) handleResetContent(c *gin.Context) {
	if err := s.content.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.content.Get())
}

// visitorEvent is the ingest payload for one reported behavior event.
type visitorEvent struct {
	SessionID string  `json:"session_id" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	Section   string  `json:"section"`
	ProjectID string  `json:"project_id"`
	Depth     float64 `json:"depth"`
	Theme     string  `json:"theme"`
}

func (s *Server) handlePostEvent(c *gin.Context) {
	var ev visitorEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tracker := s.sessions.get(ev.SessionID)

	switch ev.Type {
	case "section_enter":
		tracker.SectionEnter(engage.Section(ev.Section))
	case "section_leave":
		tracker.SectionLeave(engage.Section(ev.Section))
	case "scroll":
		tracker.Scroll(ev.Depth)
	case "project_view":
		tracker.ProjectViewed(ev.ProjectID)
	case "resume_download":
		tracker.ResumeDownloaded()
	case "linkedin_visit":
		tracker.LinkedInVisited()
	case "theme":
		tracker.SetTheme(engage.Theme(ev.Theme))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event type " + ev.Type})
		return
	}

	s.journal(&ev)

	c.JSON(http.StatusOK, gin.H{"snapshot": tracker.Current()})
}

// journal appends the event to the engagement journal. Failures are
// logged and never surfaced to the visitor.
func (s *Server) journal(ev *visitorEvent) {
	section := ev.Section
	if section == "" {
		section = ev.ProjectID
	}
	value := ev.Depth

	err := s.db.InsertVisitorEvent(&store.VisitorEvent{
		SessionID:  ev.SessionID,
		EventType:  ev.Type,
		Section:    section,
		Value:      value,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Printf("journaling %s event: %v", ev.Type, err)
	}
}

// ctaResponse is the selection result for one session.
type ctaResponse struct {
	Revealed bool            `json:"revealed"`
	Option   *cta.Option     `json:"option,omitempty"`
	Snapshot engage.Snapshot `json:"snapshot"`
}

func (s *Server) handleGetCTA(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session parameter"})
		return
	}

	tracker, ok := s.sessions.peek(sessionID)
	if !ok {
		// No events reported yet for this identifier; nothing to show
		// and no reason to allocate a tracker.
		c.JSON(http.StatusOK, ctaResponse{})
		return
	}
	snap := tracker.Current()

	resp := ctaResponse{
		Revealed: cta.Revealed(snap, tracker.SessionStart(), time.Now(),
			s.cfg.Reveal.Delay, s.cfg.Reveal.ScrollDepth),
		Snapshot: snap,
	}
	if resp.Revealed {
		if opt, ok := s.selector.Select(snap); ok {
			resp.Option = &opt
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleDismissCTA(c *gin.Context) {
	if err := s.selector.Dismiss(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dismissed": c.Param("id")})
}

// relayEffector acknowledges effects without executing them; the browser
// performs the actual navigation, download, or scroll.
type relayEffector struct{}

func (relayEffector) OpenLink(string) error { return nil }
func (relayEffector) Download(string) error { return nil }
func (relayEffector) ScrollTo(string) error { return nil }

func (s *Server) handleAcceptCTA(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session parameter"})
		return
	}

	id := c.Param("id")
	var accepted *cta.Option
	for _, opt := range cta.Options(s.targets()) {
		if opt.ID == id {
			accepted = &opt
			break
		}
	}
	if accepted == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown option " + id})
		return
	}

	tracker := s.sessions.get(sessionID)
	cta.Accept(*accepted, relayEffector{}, tracker)

	c.JSON(http.StatusOK, gin.H{
		"effect": accepted.Effect,
		"target": accepted.Target,
	})
}

func (s *Server) targets() cta.Targets {
	return cta.Targets{
		LinkedInURL:    s.content.Get().Links.LinkedIn,
		ResumePath:     s.cfg.ResumePath,
		ScheduleURL:    s.cfg.ScheduleURL,
		ProjectsAnchor: "projects",
	}
}

func (s *Server) handleGetProof(c *gin.Context) {
	items := s.proof.Active()
	if items == nil {
		items = []proof.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleGetActivity(c *gin.Context) {
	useReal, _ := strconv.ParseBool(c.DefaultQuery("real", "false"))

	username := github.UsernameFromURL(s.content.Get().Links.GitHub, s.cfg.GitHubUser)
	days, stats := s.loader.Load(c.Request.Context(), username, useReal)

	c.JSON(http.StatusOK, gin.H{
		"days":  days,
		"stats": stats,
	})
}

func (s *Server) handleGetRepos(c *gin.Context) {
	s.repoMu.Lock()
	defer s.repoMu.Unlock()

	if s.repoSummary == nil || time.Since(s.repoFetchedAt) > repoCacheTTL {
		username := github.UsernameFromURL(s.content.Get().Links.GitHub, s.cfg.GitHubUser)
		summary, err := s.github.Repos(c.Request.Context(), username)
		if err != nil {
			if s.repoSummary == nil {
				// Nothing cached yet; the page renders without the
				// listing rather than erroring.
				log.Printf("repo fetch failed, serving empty listing: %v", err)
				c.JSON(http.StatusOK, &github.RepoSummary{Repos: []github.Repo{}})
				return
			}
			log.Printf("repo refresh failed, serving cached listing: %v", err)
		} else {
			s.repoSummary = summary
			s.repoFetchedAt = time.Now()
		}
	}

	c.JSON(http.StatusOK, s.repoSummary)
}

func (s *Server) handleGetResume(c *gin.Context) {
	c.FileAttachment(s.cfg.ResumePath, "Likhith_Lanka_Resume.pdf")
}
