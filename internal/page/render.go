package page

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"
	"gopkg.in/yaml.v3"

	"github.com/mad4j/rustedbytes/internal/config"
)

// Placeholder cells for projects without a release or crates.io entry.
// The literals match the original generated page.
const (
	PlaceholderNoReleases   = "No releases"
	PlaceholderNotPublished = "Not published"
)

// noDescription fills the description column when the repository has none
const noDescription = "No description available"

// Date formats embedded in the page
const (
	releaseDateFormat = "2006-01-02"
	timestampFormat   = "2006-01-02 15:04:05 UTC"
)

// Render produces the page document for the given projects using the
// configured layout. The caller supplies the generation time, so rendering
// is a pure function of its inputs.
func Render(cfg *config.Config, intro *Intro, projects []Project, now time.Time) (string, error) {
	if intro == nil {
		intro = DefaultIntro()
	}
	styling := resolveStyling(cfg.Styling, intro.Meta)

	switch cfg.Layout {
	case config.LayoutHTML:
		return renderHTML(cfg, styling, intro, projects, now)
	case config.LayoutMinimal:
		return renderMinimal(cfg, styling, projects, now)
	default:
		return renderDefault(cfg, styling, intro, projects, now)
	}
}

// resolveStyling layers the styling sources: explicit config wins, then
// intro front matter, then the built-in defaults.
func resolveStyling(cfg config.Styling, meta IntroMeta) config.Styling {
	pick := func(values ...string) string {
		for _, v := range values {
			if v != "" {
				return v
			}
		}
		return ""
	}
	return config.Styling{
		PageTitle:       pick(cfg.PageTitle, meta.Title, config.DefaultPageTitle),
		PageDescription: pick(cfg.PageDescription, meta.Description, config.DefaultPageDescription),
		HeaderEmoji:     pick(cfg.HeaderEmoji, meta.Emoji, config.DefaultHeaderEmoji),
	}
}

// pageFrontMatter is the Jekyll front matter emitted at the top of the
// Markdown layouts. Declaration order is emission order.
type pageFrontMatter struct {
	Layout      string `yaml:"layout"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Theme       string `yaml:"theme,omitempty"`
}

// frontMatterBlock marshals the front matter between --- markers.
func frontMatterBlock(cfg *config.Config, styling config.Styling) (string, error) {
	fm := pageFrontMatter{
		Layout:      cfg.Layout,
		Title:       styling.PageTitle,
		Description: styling.PageDescription,
		Theme:       cfg.Theme,
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal front matter: %w", err)
	}

	var buf strings.Builder
	buf.WriteString("---\n")
	buf.Write(data)
	buf.WriteString("---\n")
	return buf.String(), nil
}

// describeProject returns the description column text.
func describeProject(p Project) string {
	if p.Description == "" {
		return noDescription
	}
	return p.Description
}

// escapeCell makes free text safe inside a Markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// releaseCell renders the latest-release column for one project.
func releaseCell(p Project) string {
	if p.Release == nil {
		return PlaceholderNoReleases
	}
	return fmt.Sprintf("[%s](%s) (%s)",
		p.Release.Tag, p.Release.URL, p.Release.PublishedAt.Format(releaseDateFormat))
}

// crateCell renders the crates.io column for one project.
func crateCell(p Project) string {
	if p.Crate == nil {
		return PlaceholderNotPublished
	}
	return fmt.Sprintf("[%s](%s)", p.Crate.Version, p.Crate.URL)
}

// markdownTable renders the project table block. Every layout embeds this
// block unchanged, so the record data is layout-independent.
func markdownTable(projects []Project) string {
	var buf strings.Builder
	buf.WriteString("| Project | Description | Latest Release | Crates.io |\n")
	buf.WriteString("|---------|-------------|----------------|-----------|\n")
	for _, p := range projects {
		fmt.Fprintf(&buf, "| [**%s**](%s) | %s | %s | %s |\n",
			p.Name,
			p.RepoURL,
			escapeCell(describeProject(p)),
			releaseCell(p),
			crateCell(p))
	}
	return buf.String()
}

// renderDefault emits the full Markdown page: front matter, heading, intro
// prose, the table, and the attribution footer.
func renderDefault(cfg *config.Config, styling config.Styling, intro *Intro, projects []Project, now time.Time) (string, error) {
	fm, err := frontMatterBlock(cfg, styling)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString(fm)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "# %s %s\n\n", styling.HeaderEmoji, styling.PageTitle)
	fmt.Fprintf(&buf, "%s\n\n", styling.PageDescription)
	if intro.Body != "" {
		buf.WriteString(intro.Body)
		buf.WriteString("\n\n")
	}
	buf.WriteString("## Projects\n\n")
	buf.WriteString(markdownTable(projects))
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Generated from [@%s](https://github.com/%s) GitHub repositories\n\n",
		cfg.GitHub.User, cfg.GitHub.User)
	fmt.Fprintf(&buf, "Last updated: %s\n", now.Format(timestampFormat))
	return buf.String(), nil
}

// renderMinimal emits front matter and the table only.
func renderMinimal(cfg *config.Config, styling config.Styling, projects []Project, now time.Time) (string, error) {
	fm, err := frontMatterBlock(cfg, styling)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString(fm)
	buf.WriteString("\n")
	buf.WriteString(markdownTable(projects))
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Last updated: %s\n", now.Format(timestampFormat))
	return buf.String(), nil
}

// htmlPage is the data passed to the html layout template.
type htmlPage struct {
	Title       string
	Description string
	Emoji       string
	Intro       template.HTML
	Projects    []Project
	User        string
	Updated     string
}

var htmlTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"fmtDate":  func(t time.Time) string { return t.Format(releaseDateFormat) },
	"describe": describeProject,
}).Parse(htmlLayout))

// renderHTML emits the standalone HTML page. The intro Markdown is
// converted to HTML; everything else passes through the auto-escaping
// template.
func renderHTML(cfg *config.Config, styling config.Styling, intro *Intro, projects []Project, now time.Time) (string, error) {
	data := htmlPage{
		Title:       styling.PageTitle,
		Description: styling.PageDescription,
		Emoji:       styling.HeaderEmoji,
		Intro:       template.HTML(blackfriday.Run([]byte(intro.Body))),
		Projects:    projects,
		User:        cfg.GitHub.User,
		Updated:     now.Format(timestampFormat),
	}

	var buf strings.Builder
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render html layout: %w", err)
	}
	return buf.String(), nil
}

// htmlLayout reproduces the original generated page, including its inline
// styling.
const htmlLayout = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 2rem;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 12px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
            overflow: hidden;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 3rem 2rem;
            text-align: center;
        }

        header h1 {
            font-size: 2.5rem;
            margin-bottom: 0.5rem;
            font-weight: 700;
        }

        header p {
            font-size: 1.2rem;
            opacity: 0.95;
        }

        .intro {
            padding: 2rem;
            background: #f8f9fa;
            border-bottom: 1px solid #e9ecef;
        }

        .intro p {
            font-size: 1.1rem;
            color: #495057;
            margin-bottom: 1rem;
        }

        .content {
            padding: 2rem;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 1rem;
        }

        th {
            background: #667eea;
            color: white;
            padding: 1rem;
            text-align: left;
            font-weight: 600;
            border-bottom: 2px solid #5568d3;
        }

        td {
            padding: 1rem;
            border-bottom: 1px solid #e9ecef;
        }

        tr:hover {
            background: #f8f9fa;
        }

        a {
            color: #667eea;
            text-decoration: none;
            transition: color 0.2s;
        }

        a:hover {
            color: #764ba2;
            text-decoration: underline;
        }

        .no-data {
            color: #6c757d;
            font-style: italic;
        }

        footer {
            padding: 2rem;
            text-align: center;
            color: #6c757d;
            background: #f8f9fa;
            border-top: 1px solid #e9ecef;
        }

        footer a {
            color: #667eea;
            font-weight: 600;
        }

        .update-time {
            font-size: 0.9rem;
            color: #6c757d;
            margin-top: 0.5rem;
        }

        @media (max-width: 768px) {
            body {
                padding: 1rem;
            }

            header h1 {
                font-size: 1.8rem;
            }

            table {
                font-size: 0.9rem;
            }

            th, td {
                padding: 0.75rem 0.5rem;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>{{.Emoji}} {{.Title}}</h1>
            <p>{{.Description}}</p>
        </header>

        <div class="intro">
            {{.Intro}}
        </div>

        <div class="content">
            <h2>Projects</h2>
            <table>
                <thead>
                    <tr>
                        <th>Project</th>
                        <th>Description</th>
                        <th>Latest Release</th>
                        <th>Crates.io</th>
                    </tr>
                </thead>
                <tbody>
{{- range .Projects}}
                    <tr>
                        <td><a href="{{.RepoURL}}"><strong>{{.Name}}</strong></a></td>
                        <td>{{describe .}}</td>
                        <td>{{if .Release}}<a href="{{.Release.URL}}">{{.Release.Tag}}</a> ({{fmtDate .Release.PublishedAt}}){{else}}<span class="no-data">No releases</span>{{end}}</td>
                        <td>{{if .Crate}}<a href="{{.Crate.URL}}">{{.Crate.Version}}</a>{{else}}<span class="no-data">Not published</span>{{end}}</td>
                    </tr>
{{- end}}
                </tbody>
            </table>
        </div>

        <footer>
            <p>
                Generated from <a href="https://github.com/{{.User}}" target="_blank">@{{.User}}</a> GitHub repositories
            </p>
            <p class="update-time">Last updated: {{.Updated}}</p>
        </footer>
    </div>
</body>
</html>
`
