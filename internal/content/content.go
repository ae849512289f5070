// Package content holds the portfolio page document: every piece of text
// and every link the display components render. The document shape is
// fixed; only leaf values change between the built-in defaults and an
// owner-edited override.
package content

// Content is the full portfolio document. JSON field names match the
// frontend's stored document so an override written by either side reads
// back identically.
type Content struct {
	Hero         Hero         `json:"hero"`
	About        About        `json:"about"`
	Skills       Skills       `json:"skills"`
	FeaturedWork FeaturedWork `json:"featuredWork"`
	Experience   Experience   `json:"experience"`
	Education    Education    `json:"education"`
	Footer       Footer       `json:"footer"`
	Links        Links        `json:"links"`
}

// Hero is the top-of-page introduction block.
type Hero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

// About is the biography block with its four headline metrics.
type About struct {
	Title      string  `json:"title"`
	Subtitle   string  `json:"subtitle"`
	Paragraph1 string  `json:"paragraph1"`
	Paragraph2 string  `json:"paragraph2"`
	Metrics    Metrics `json:"metrics"`
}

// Metrics are the four fixed about-section statistics.
type Metrics struct {
	WAUGrowth        Metric `json:"wauGrowth"`
	HoursSaved       Metric `json:"hoursSaved"`
	ReportsReduction Metric `json:"reportsReduction"`
	FasterDecisions  Metric `json:"fasterDecisions"`
}

// Metric is a single value/label pair.
type Metric struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Skills is the skills section with its four fixed categories.
type Skills struct {
	Title      string          `json:"title"`
	Subtitle   string          `json:"subtitle"`
	Categories SkillCategories `json:"categories"`
}

// SkillCategories holds the four skill groupings.
type SkillCategories struct {
	ProductManagement  SkillCategory `json:"productManagement"`
	DataAnalytics      SkillCategory `json:"dataAnalytics"`
	TechnicalTools     SkillCategory `json:"technicalTools"`
	LeadershipStrategy SkillCategory `json:"leadershipStrategy"`
}

// SkillCategory is a titled list of skill names.
type SkillCategory struct {
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

// FeaturedWork is the featured-work section with its three fixed projects.
type FeaturedWork struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Projects FeaturedProjects `json:"projects"`
}

// FeaturedProjects holds the three showcased projects.
type FeaturedProjects struct {
	AICoverLetter Project `json:"aiCoverLetter"`
	AICVPlatform  Project `json:"aiCvPlatform"`
	DataPipeline  Project `json:"dataPipeline"`
}

// Project is one featured-work entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Impact       string   `json:"impact"`
	Metrics      string   `json:"metrics"`
	Technologies []string `json:"technologies"`
}

// Experience is the timeline section header text.
type Experience struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Education is the education section with its two fixed entries.
type Education struct {
	Title string         `json:"title"`
	Items EducationItems `json:"items"`
}

// EducationItems holds the two degrees.
type EducationItems struct {
	MBA   Degree `json:"mba"`
	BTech Degree `json:"btech"`
}

// Degree is a single education entry with nested achievements.
type Degree struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Period       string   `json:"period"`
	GPA          string   `json:"gpa"`
	Achievements []string `json:"achievements"`
}

// Footer is the page footer text.
type Footer struct {
	Tagline   string `json:"tagline"`
	Copyright string `json:"copyright"`
}

// Links are the fixed external link URLs and the resume path.
type Links struct {
	Resume    string `json:"resume"`
	Portfolio string `json:"portfolio"`
	CTALink   string `json:"ctaLink"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Email     string `json:"email"`
}
