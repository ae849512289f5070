package content

// DefaultContent returns the built-in portfolio document. A fresh value is
// returned on every call so callers cannot alias the defaults.
func DefaultContent() Content {
	return Content{
		Hero: Hero{
			Title:       "Hi, I'm Likhith",
			Subtitle:    "PM-2 at Amazon | Digital Strategy & Product Leader | MBA from IIM Calcutta",
			Description: "4+ years of cross-functional experience in product strategy, forecasting automation, capacity planning and engineering. Proven ability to bridge business and technology, driving scalable, customer-centric solutions.",
		},
		About: About{
			Title:      "About Me",
			Subtitle:   "Passionate about creating products that transform businesses and delight users",
			Paragraph1: "Product Manager with 4+ years of cross-functional experience spanning product strategy, forecasting automation, capacity planning and engineering. Proven ability to bridge business and technology, having transitioned from backend development to product leadership.",
			Paragraph2: "Currently PM-2 at Amazon, with an MBA from IIM Calcutta and strong technical foundation in system design, analytics, and AI-driven product development. Focused on shipping scalable, customer-centric solutions that drive measurable business impact.",
			Metrics: Metrics{
				WAUGrowth:        Metric{Value: "35%", Label: "WAU Growth"},
				HoursSaved:       Metric{Value: "100+", Label: "Hours Saved"},
				ReportsReduction: Metric{Value: "60%", Label: "Duplicate Reports Cut"},
				FasterDecisions:  Metric{Value: "25%", Label: "Faster Decisions"},
			},
		},
		Skills: Skills{
			Title:    "Skills & Expertise",
			Subtitle: "A comprehensive toolkit spanning product strategy, data science, and technical leadership",
			Categories: SkillCategories{
				ProductManagement: SkillCategory{
					Title:  "Product Management",
					Skills: []string{"Product Strategy", "Roadmap Planning", "Feature Prioritization", "PRD Writing", "Agile/Scrum", "A/B Testing", "OKRs & KPIs", "User Research", "Competitive Analysis", "Go-to-Market Strategy"},
				},
				DataAnalytics: SkillCategory{
					Title:  "Data & Analytics",
					Skills: []string{"Python", "SQL", "Data Analysis & Visualization", "Product Analytics", "Machine Learning", "Capacity Planning", "Statistical Analysis", "Predictive Modeling", "Business Intelligence", "ETL Processes"},
				},
				TechnicalTools: SkillCategory{
					Title:  "Technical & Tools",
					Skills: []string{"API Architecture", "System Design", "Cloud Platforms (AWS)", "Figma/Design Tools", "Tableau/QuickSight", "Excel/Google Sheets", "Git/Version Control", "Agile Tools (Jira, Asana)", "Collaboration (Miro, Slack)", "Documentation (Notion, Confluence)"},
				},
				LeadershipStrategy: SkillCategory{
					Title:  "Leadership & Strategy",
					Skills: []string{"Cross-functional Leadership", "Stakeholder Management", "Strategic Planning", "Team Building", "Change Management", "Executive Communication", "Conflict Resolution", "Mentoring & Coaching", "Project Management", "Business Development"},
				},
			},
		},
		FeaturedWork: FeaturedWork{
			Title:    "Featured Work",
			Subtitle: "Real-world applications of AI and data science in product development",
			Projects: FeaturedProjects{
				AICoverLetter: Project{
					Title:        "AI Cover Letter Tool",
					Description:  "Led development of an AI-driven cover letter tool from ideation to deployment, writing PRDs and designing the system architecture, reducing cover letter creation time by 50%.",
					Impact:       "50% time reduction",
					Metrics:      "PRDs written, system designed",
					Technologies: []string{"AI/ML", "System Architecture", "Product Strategy"},
				},
				AICVPlatform: Project{
					Title:        "AI CV Optimization Platform",
					Description:  "Led development of a microservices-based platform with systemized skill clustering and LLM-driven analysis of 2K+ job descriptions, achieving 200+ new user sign-ups within the first week.",
					Impact:       "200+ signups in week 1",
					Metrics:      "2K+ job descriptions analyzed",
					Technologies: []string{"Microservices", "LLM", "Data Analysis"},
				},
				DataPipeline: Project{
					Title:        "Data Pipeline Automation",
					Description:  "Developed automated ETL pipelines with ML-driven validation checks for CV optimization tool, boosting data accuracy by 40% and cutting manual processing time by 60%.",
					Impact:       "40% accuracy boost",
					Metrics:      "60% time reduction",
					Technologies: []string{"ETL", "Machine Learning", "Data Validation"},
				},
			},
		},
		Experience: Experience{
			Title:    "Professional Journey",
			Subtitle: "Click on timeline nodes to explore detailed achievements and impact",
		},
		Education: Education{
			Title: "Education",
			Items: EducationItems{
				MBA: Degree{
					Degree:      "MBA (Master of Business Administration)",
					Institution: "IIM Calcutta",
					Period:      "2021 – 2023",
					GPA:         "Distinction",
					Achievements: []string{
						"Vice President for Data Analytics Club",
						"Campus Winner – Microsoft PM Engage (product management competition)",
						"National Finalist, WinZO BOSS and Global Management Challenge (strategy simulations)",
						"Specialized in Digital Strategy & Product Management",
					},
				},
				BTech: Degree{
					Degree:      "B.Tech, Computer Science",
					Institution: "IIIT Sri City",
					Period:      "2015 – 2019",
					GPA:         "High Honors",
					Achievements: []string{
						"Founder, CodeChef Campus Chapter (earned 5-star rating on CodeChef)",
						"Teaching Assistant for C Programming and Algorithms courses",
						"Active contributor to competitive programming community",
					},
				},
			},
		},
		Footer: Footer{
			Tagline:   "Made with ☕ and Python.",
			Copyright: "© 2024 Likhith Sai Lanka. All rights reserved.",
		},
		Links: Links{
			Resume:    "/resume-likhith-lanka.pdf",
			Portfolio: "https://github.com/likhithlanka",
			CTALink:   "mailto:likhith.lanka@gmail.com",
			GitHub:    "https://github.com/likhithlanka",
			LinkedIn:  "https://linkedin.com/in/likhith-lanka",
			Email:     "likhith.lanka@gmail.com",
		},
	}
}
