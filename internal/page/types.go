package page

import "time"

// Project is one row of the generated page: a repository from the
// collection together with whatever release and registry data the lookups
// found.
type Project struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	RepoURL     string     `json:"repo_url"`
	Release     *Release   `json:"release,omitempty"`
	Crate       *CrateInfo `json:"crate,omitempty"`
}

// Release describes the latest tagged GitHub release of a project.
type Release struct {
	Tag         string    `json:"tag"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// CrateInfo describes the crates.io publication of a project.
type CrateInfo struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}
