// Package report renders validation reports as markdown and HTML for the
// API and CLI surfaces. Rendering adds no findings; it only formats what
// the engine produced.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"enercheck/ports"
)

// Renderer formats validation reports
type Renderer struct{}

// NewRenderer creates a report renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Markdown renders a report as a markdown document with summary, checks,
// warnings, errors, and recommendations sections.
func (r *Renderer) Markdown(report *ports.Report) string {
	var b strings.Builder

	b.WriteString("# Validation Report\n\n")
	fmt.Fprintf(&b, "- **Report ID**: %s\n", report.ReportID)
	fmt.Fprintf(&b, "- **Generated**: %s\n", report.GeneratedAt)
	if report.Domain != "" {
		fmt.Fprintf(&b, "- **Domain**: %s\n", report.Domain)
	}
	for _, line := range countLines(report.EntityCounts) {
		fmt.Fprintf(&b, "- **Entities**: %s\n", line)
	}

	res := report.Result
	b.WriteString("\n## Summary\n\n")
	verdict := "INVALID"
	if res.IsValid {
		verdict = "VALID"
	}
	fmt.Fprintf(&b, "**%s** — overall score %.0f/100, %d of %d checks passed\n",
		verdict, res.OverallScore, res.PassedChecks(), len(res.Checks))

	if len(res.Checks) > 0 {
		b.WriteString("\n## Checks\n\n")
		b.WriteString("| Check | Category | Result | Score | Details |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, c := range res.Checks {
			outcome := "FAIL"
			if c.Passed {
				outcome = "PASS"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %.0f | %s |\n",
				escapeCell(c.Name), c.Category, outcome, c.Score, escapeCell(c.Details))
		}
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", strings.ToUpper(string(w.Severity)), w.Category, w.Message)
			if w.Suggestion != "" {
				fmt.Fprintf(&b, "  - _%s_\n", w.Suggestion)
			}
		}
	}

	if len(res.Errors) > 0 {
		b.WriteString("\n## Errors\n\n")
		for _, e := range res.Errors {
			tag := ""
			if e.Fatal {
				tag = " **[FATAL]**"
			}
			fmt.Fprintf(&b, "- (%s)%s %s\n", e.Category, tag, e.Message)
		}
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for i, rec := range res.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	return b.String()
}

// HTML renders the markdown report as a standalone HTML fragment
func (r *Renderer) HTML(report *ports.Report) []byte {
	md := r.Markdown(report)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	opts := html.RendererOptions{Flags: html.CommonFlags}
	return markdown.ToHTML([]byte(md), p, html.NewRenderer(opts))
}

// countLines flattens entity counts into one stable, comma-joined line.
// Map iteration order is not stable, so keys are sorted first.
func countLines(counts map[string]int) []string {
	if len(counts) == 0 {
		return nil
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
	}
	return []string{strings.Join(parts, ", ")}
}

// escapeCell keeps free-text details from breaking the markdown table
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

var _ ports.ReportRendererPort = (*Renderer)(nil)
