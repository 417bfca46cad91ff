package ui

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"datalens/domain/table"
	"datalens/internal/errors"
)

// chartBar is one bar of a rendered histogram or frequency chart.
type chartBar struct {
	Label string
	Count int
}

// numericChart is the dashboard view of one numeric column.
type numericChart struct {
	Name    string
	Stats   table.NumericStats
	Bars    []chartBar
	MaxBar  int
	Missing int
}

// categoryChart is the dashboard view of one categorical column.
type categoryChart struct {
	Name    string
	Bars    []chartBar
	MaxBar  int
	Unique  int
	Missing int
}

func (d *Dashboard) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Data Analysis Dashboard",
	})
}

func (d *Dashboard) handleRecordsPage(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := d.records.List(c.Request.Context(), page, 10)
	if err != nil {
		d.log.Error("dashboard record listing failed", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Records", "Message": "Failed to load records"})
		return
	}

	c.HTML(http.StatusOK, "records.html", gin.H{
		"Title":    "Records",
		"Page":     result,
		"PrevPage": result.Page - 1,
		"NextPage": result.Page + 1,
		"HasPrev":  result.Page > 1,
		"HasNext":  result.Page < result.TotalPages,
	})
}

func (d *Dashboard) handleAnalysisPage(c *gin.Context) {
	report, err := d.analysis.Analyze(c.Request.Context())
	if err != nil {
		if errors.GetCode(err) == errors.CodeDataUnavailable {
			c.HTML(http.StatusOK, "error.html", gin.H{
				"Title":   "Data Analysis",
				"Message": "No data available for analysis. Please upload a CSV file.",
			})
			return
		}
		d.log.Error("dashboard analysis failed", "error", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Data Analysis", "Message": "Analysis failed"})
		return
	}

	numeric := make([]numericChart, 0, len(report.NumericStats))
	categorical := make([]categoryChart, 0, len(report.CategoricalStats))

	// Iterate column order so charts appear in table order, not map order
	for _, name := range report.BasicInfo.Columns {
		if ns, ok := report.NumericStats[name]; ok {
			numeric = append(numeric, buildNumericChart(name, ns, report.MissingValues[name]))
		}
		if cs, ok := report.CategoricalStats[name]; ok {
			categorical = append(categorical, buildCategoryChart(name, cs, report.MissingValues[name]))
		}
	}

	c.HTML(http.StatusOK, "analysis.html", gin.H{
		"Title":       "Data Analysis",
		"Report":      report,
		"Numeric":     numeric,
		"Categorical": categorical,
	})
}

func (d *Dashboard) handleDocsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "docs.html", gin.H{
		"Title": "API Documentation",
		"Body":  d.docsHTML,
	})
}

func buildNumericChart(name string, ns table.NumericStats, missing int) numericChart {
	chart := numericChart{Name: name, Stats: ns, Missing: missing}
	for i, count := range ns.HistogramValues {
		chart.Bars = append(chart.Bars, chartBar{
			Label: fmt.Sprintf("%.1f - %.1f", ns.HistogramBins[i], ns.HistogramBins[i+1]),
			Count: count,
		})
		if count > chart.MaxBar {
			chart.MaxBar = count
		}
	}
	return chart
}

func buildCategoryChart(name string, cs table.CategoricalStats, missing int) categoryChart {
	chart := categoryChart{Name: name, Unique: cs.UniqueValues, Missing: missing}
	for i, label := range cs.Labels {
		chart.Bars = append(chart.Bars, chartBar{Label: label, Count: cs.Values[i]})
		if cs.Values[i] > chart.MaxBar {
			chart.MaxBar = cs.Values[i]
		}
	}
	return chart
}
