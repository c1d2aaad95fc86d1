package github

import "time"

// Repository is the subset of the GitHub repository object the generator
// consumes.
//
// Example entry from GET /users/{user}/repos:
//
//	{
//	  "name": "rustedbytes-sample",
//	  "description": "A sample project",
//	  "html_url": "https://github.com/mad4j/rustedbytes-sample",
//	  "fork": false,
//	  ...
//	}
//
// Note: description can be null, which decodes to an empty string.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
}

// Release is the subset of the GitHub release object the generator
// consumes.
//
// Example response from GET /repos/{owner}/{repo}/releases/latest:
//
//	{
//	  "tag_name": "v1.0.0",
//	  "html_url": "https://github.com/mad4j/rustedbytes-sample/releases/tag/v1.0.0",
//	  "published_at": "2025-01-01T12:00:00Z",
//	  ...
//	}
type Release struct {
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
}
