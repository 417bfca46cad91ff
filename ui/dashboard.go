package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"datalens/app"
)

//go:embed templates/*.html docs.md
var embeddedFiles embed.FS

// Dashboard is the HTML front-end: it renders the record listing and the
// analysis report as chart-ready tables, mirroring what the JSON API serves.
type Dashboard struct {
	engine   *gin.Engine
	records  *app.RecordService
	analysis *app.AnalysisService
	log      *slog.Logger
	docsHTML template.HTML
}

// NewDashboard creates the dashboard server and wires its routes
func NewDashboard(ginMode string, records *app.RecordService, analysis *app.AnalysisService, log *slog.Logger) (*Dashboard, error) {
	gin.SetMode(ginMode)

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"pct": func(count, max int) float64 {
			if max == 0 {
				return 0
			}
			return float64(count) / float64(max) * 100
		},
	}).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	docs, err := embeddedFiles.ReadFile("docs.md")
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		engine:   gin.New(),
		records:  records,
		analysis: analysis,
		log:      log,
		docsHTML: renderMarkdown(docs),
	}
	d.engine.Use(gin.Recovery())
	d.engine.SetHTMLTemplate(tmpl)

	d.engine.GET("/", d.handleIndex)
	d.engine.GET("/records", d.handleRecordsPage)
	d.engine.GET("/analysis", d.handleAnalysisPage)
	d.engine.GET("/docs", d.handleDocsPage)

	return d, nil
}

// Router exposes the handler tree for embedding and tests
func (d *Dashboard) Router() http.Handler {
	return d.engine
}

// renderMarkdown converts the embedded docs to HTML once at startup.
func renderMarkdown(src []byte) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return template.HTML(markdown.ToHTML(src, p, renderer))
}
