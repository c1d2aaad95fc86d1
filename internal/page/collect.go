package page

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/mad4j/rustedbytes/internal/crates"
	"github.com/mad4j/rustedbytes/internal/github"
)

// Collector assembles project records from the GitHub and crates.io APIs.
type Collector struct {
	GitHub *github.Client
	Crates *crates.Client
}

// Collect lists the repositories of user matching prefix and enriches each
// with its latest GitHub release and crates.io version. A discovery failure
// aborts the run; a failed lookup for a single project is logged and leaves
// the corresponding field unset so one broken repository cannot block the
// page.
func (c *Collector) Collect(ctx context.Context, user, prefix string) ([]Project, error) {
	repos, err := c.GitHub.ListRepositories(ctx, user, prefix)
	if err != nil {
		return nil, fmt.Errorf("repository discovery failed: %w", err)
	}

	log.Debug().
		Int("count", len(repos)).
		Str("user", user).
		Str("prefix", prefix).
		Msg("repositories discovered")

	projects := make([]Project, 0, len(repos))
	for _, repo := range repos {
		log.Debug().Str("repo", repo.Name).Msg("processing repository")

		project := Project{
			Name:        repo.Name,
			Description: repo.Description,
			RepoURL:     repo.HTMLURL,
		}

		release, err := c.GitHub.LatestRelease(ctx, user, repo.Name)
		if err != nil {
			log.Warn().Err(err).Str("repo", repo.Name).Msg("release lookup failed")
		} else if release != nil {
			releaseURL := release.HTMLURL
			if releaseURL == "" {
				releaseURL = repo.HTMLURL
			}
			project.Release = &Release{
				Tag:         release.TagName,
				URL:         releaseURL,
				PublishedAt: release.PublishedAt,
			}
		}

		crateName := crates.CrateName(repo.Name)
		crate, err := c.Crates.GetCrate(ctx, crateName)
		if err != nil {
			log.Warn().Err(err).Str("crate", crateName).Msg("crates.io lookup failed")
		} else if crate != nil {
			name := crate.Name
			if name == "" {
				name = crateName
			}
			project.Crate = &CrateInfo{
				Version: crate.NewestVersion,
				URL:     crates.PageURL(name),
			}
		}

		projects = append(projects, project)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return projects, nil
}
