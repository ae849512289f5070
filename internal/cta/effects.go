package cta

import (
	"fmt"
	"log"

	"github.com/likhithlanka/pulse/internal/engage"
)

// Effector executes an option's externally visible effect. Injecting it
// keeps selection and eligibility testable without real navigation or
// downloads.
type Effector interface {
	OpenLink(url string) error
	Download(path string) error
	ScrollTo(anchor string) error
}

// Accept runs the option's effect and flips the corresponding one-shot
// snapshot flag for the two options that have one, making them ineligible
// thereafter. A missing scroll anchor is skipped silently; other effect
// failures are logged but never surfaced.
func Accept(opt Option, e Effector, tr *engage.Tracker) {
	var err error
	switch opt.Effect {
	case EffectOpenLink:
		err = e.OpenLink(opt.Target)
	case EffectDownload:
		err = e.Download(opt.Target)
	case EffectScrollTo:
		err = e.ScrollTo(opt.Target)
	default:
		err = fmt.Errorf("unknown effect kind %q", opt.Effect)
	}
	if err != nil {
		log.Printf("cta: effect for %s skipped: %v", opt.ID, err)
		return
	}

	if tr == nil {
		return
	}
	switch opt.ID {
	case "download-resume":
		tr.ResumeDownloaded()
	case "connect-linkedin":
		tr.LinkedInVisited()
	}
}
