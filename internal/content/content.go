// Package content holds the static page copy for the portfolio.
package content

var AboutMe = `I'm an undergraduate software engineering student who enjoys building
things for the web end to end, from polished interfaces down to the small
services behind them. Most of my projects start as a simple idea and turn
into an excuse to learn a new stack, and when I'm not coding I'm usually
involved with IEEE student chapter work or chasing a new certification.`

// Project is one portfolio entry, addressable by slug.
type Project struct {
	Slug         string
	Title        string
	Summary      string
	Features     []string
	Architecture string
	Challenges   []string
}

var Projects = []Project{
	{
		Slug:    "blood-donation-system",
		Title:   "Blood Donation Management System",
		Summary: "A role-based donor and inventory management system with doctor dashboards and appointment scheduling.",
		Features: []string{
			"Secure authentication with role-based access",
			"Donor registration and profile management",
			"Blood inventory tracking and alerts",
			"Appointment scheduling",
		},
		Architecture: "PHP MVC with a MySQL database",
		Challenges: []string{
			"Modelling the database relationships",
			"Keeping inventory levels consistent with alerts",
		},
	},
	{
		Slug:    "chatx-realtime-chat-app",
		Title:   "ChatX Realtime Chat App",
		Summary: "A realtime messaging app with profiles, presence and persistent history.",
		Features: []string{
			"Realtime messaging with Firebase",
			"User authentication and profiles",
			"Online/offline presence",
			"Message history preservation",
		},
		Architecture: "React SPA with a Firebase backend",
		Challenges: []string{
			"Delivering messages without visible delay",
			"Managing message state across reconnects",
		},
	},
	{
		Slug:    "google-keep-clone",
		Title:   "Google Keep Clone",
		Summary: "A note-taking app with labels, colors and archive, built to learn component state at scale.",
		Features: []string{
			"Note creation and editing",
			"Labels and color coding",
			"Archive and trash flows",
		},
		Architecture: "React with local persistence",
		Challenges: []string{
			"Keeping list reordering smooth with many notes",
		},
	},
	{
		Slug:    "portfolio-website",
		Title:   "This Website",
		Summary: "A portfolio served by a single Go binary: Gin, server-rendered pages, a private blog and a GitHub contributions widget.",
		Features: []string{
			"Server-rendered pages with Gin templates",
			"GitHub contributions proxy with edge caching",
			"Password-gated private blog on SQLite",
		},
		Architecture: "Go, Gin, SQLite",
		Challenges: []string{
			"Re-theming upstream SVG markup without fragile string splicing",
		},
	},
}

// ProjectBySlug returns the project with the given slug, or nil.
func ProjectBySlug(slug string) *Project {
	for i := range Projects {
		if Projects[i].Slug == slug {
			return &Projects[i]
		}
	}
	return nil
}

// Certification is one achievement card.
type Certification struct {
	Title  string
	Org    string
	Issued string
}

var Certifications = []Certification{
	{Title: "Career Essentials in Cybersecurity", Org: "Microsoft and LinkedIn", Issued: "Aug 2024"},
	{Title: "Career Essentials in GitHub", Org: "GitHub", Issued: "Aug 2024"},
	{Title: "Career Essentials in System Administration", Org: "Microsoft and LinkedIn", Issued: "Aug 2024"},
	{Title: "Introduction to Career Skills in Software Development", Org: "LinkedIn", Issued: "Aug 2024"},
}

// BlogCard is a public blog teaser shown on the blogs page. The private blog
// lives behind the gate and is a separate thing entirely.
type BlogCard struct {
	Slug     string
	Title    string
	Date     string
	Category string
	Intro    string
}

var PublicBlogs = []BlogCard{
	{
		Slug:     "presenting-ieee-cs-sliit-web-dev-team",
		Title:    "Presenting the IEEE CS SLIIT Web Development Team 25/26!",
		Date:     "2025, August 30",
		Category: "Announcement",
		Intro:    "I'm excited to announce that I'm part of the IEEE CS SLIIT Web Development Team 25/26, driving all web-related initiatives of the chapter.",
	},
}
