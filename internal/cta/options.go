// Package cta selects the single call-to-action worth showing a visitor,
// based on their behavior snapshot and which options they have already
// dismissed.
package cta

import "github.com/likhithlanka/pulse/internal/engage"

// EffectKind classifies the single externally visible effect an option
// performs when accepted.
type EffectKind string

// Effect kinds.
const (
	EffectOpenLink EffectKind = "open_link"
	EffectDownload EffectKind = "download"
	EffectScrollTo EffectKind = "scroll_to"
)

// Option is one fixed call-to-action. Eligible is a pure predicate over
// the snapshot; the effect is executed separately so selection stays free
// of side effects.
type Option struct {
	ID        string     `json:"id"`
	Primary   string     `json:"primary"`
	Secondary string     `json:"secondary"`
	Icon      string     `json:"icon"`
	Priority  int        `json:"priority"`
	Effect    EffectKind `json:"effect"`
	Target    string     `json:"target"`

	Eligible func(engage.Snapshot) bool `json:"-"`
}

// Targets supplies the destinations the fixed options act on.
type Targets struct {
	LinkedInURL    string
	ResumePath     string
	ScheduleURL    string
	ProjectsAnchor string
}

// Dwell and scroll thresholds for option eligibility, in seconds and
// percent of scrollable height.
const (
	strategySkillsDwell     = 10.0
	strategyExperienceDwell = 8.0
	scheduleScrollDepth     = 60.0
	scheduleSkillsDwell     = 15.0
	scheduleProjectsDwell   = 10.0
	caseStudiesDwell        = 15.0
	caseStudiesMaxViewed    = 2
	resumeScrollDepth       = 25.0
	linkedInScrollDepth     = 40.0
)

// Options returns the fixed option set in declaration order, priority
// descending. Ties in Select resolve to the first listed.
func Options(t Targets) []Option {
	return []Option{
		{
			ID:        "product-strategy",
			Primary:   "Discuss Product Strategy",
			Secondary: "You seem interested in my PM approach",
			Icon:      "message-circle",
			Priority:  10,
			Effect:    EffectOpenLink,
			Target:    t.LinkedInURL,
			Eligible: func(s engage.Snapshot) bool {
				return s.TimeOnSkills > strategySkillsDwell || s.TimeOnExperience > strategyExperienceDwell
			},
		},
		{
			ID:        "schedule-call",
			Primary:   "Schedule a Call",
			Secondary: "Ready to discuss opportunities?",
			Icon:      "calendar",
			Priority:  9,
			Effect:    EffectOpenLink,
			Target:    t.ScheduleURL,
			Eligible: func(s engage.Snapshot) bool {
				return s.ScrollDepth > scheduleScrollDepth ||
					(s.TimeOnSkills > scheduleSkillsDwell && s.TimeOnProjects > scheduleProjectsDwell)
			},
		},
		{
			ID:        "case-studies",
			Primary:   "See Detailed Case Studies",
			Secondary: "Dive deeper into my project work",
			Icon:      "external-link",
			Priority:  8,
			Effect:    EffectScrollTo,
			Target:    t.ProjectsAnchor,
			Eligible: func(s engage.Snapshot) bool {
				return s.TimeOnProjects > caseStudiesDwell && s.ViewedProjects < caseStudiesMaxViewed
			},
		},
		{
			ID:        "download-resume",
			Primary:   "Download Resume",
			Secondary: "Get the full professional summary",
			Icon:      "download",
			Priority:  6,
			Effect:    EffectDownload,
			Target:    t.ResumePath,
			Eligible: func(s engage.Snapshot) bool {
				return !s.HasDownloadedResume && s.ScrollDepth > resumeScrollDepth
			},
		},
		{
			ID:        "connect-linkedin",
			Primary:   "Connect on LinkedIn",
			Secondary: "Let's continue the conversation",
			Icon:      "linkedin",
			Priority:  5,
			Effect:    EffectOpenLink,
			Target:    t.LinkedInURL,
			Eligible: func(s engage.Snapshot) bool {
				return !s.HasVisitedLinkedIn && s.ScrollDepth > linkedInScrollDepth
			},
		},
	}
}
