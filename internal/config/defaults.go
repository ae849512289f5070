// Package config provides configuration loading and defaults for pulse.
package config

import "time"

// DefaultAddr is the default listen address for the HTTP server.
const DefaultAddr = ":8090"

// DefaultConfigDir is the default location for pulse configuration.
const DefaultConfigDir = "~/.config/pulse"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "pulse.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultGitHubUser is the profile whose repositories and contribution
// calendar back the activity views.
const DefaultGitHubUser = "likhithlanka"

// DefaultResumePath is the filesystem path of the downloadable resume.
const DefaultResumePath = "assets/Likhith_Resume.pdf"

// DefaultScheduleURL is the external booking link for the
// highest-intent call to action.
const DefaultScheduleURL = "https://calendly.com/likhithlanka"

// DefaultReveal holds the default call-to-action reveal gate: the bar
// appears after the delay elapses or the visitor scrolls past the
// depth, whichever comes first.
var DefaultReveal = Reveal{
	Delay:       5 * time.Second,
	ScrollDepth: 30,
}

// DefaultProof holds the default social-proof timing. Values mirror the
// scheduler's built-in defaults so a config file can tune them.
var DefaultProof = Proof{
	InitialDelay:    30 * time.Second,
	Interval:        45 * time.Second,
	DisplayDuration: 8 * time.Second,
	Chance:          0.4,
}

// DefaultSessionTTL is how long an idle visitor session is retained
// before its tracker is evicted.
const DefaultSessionTTL = 30 * time.Minute

// DefaultOutput holds the default terminal output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
