package report

import "strings"

const (
	enrichmentStart = "<!-- enrichment:start -->"
	enrichmentEnd   = "<!-- enrichment:end -->"
)

// AppendEnrichment appends an externally generated narrative section to
// a rendered report. The section is delimited by HTML comments so a
// later pass can locate or replace it. An empty body is a no-op.
func AppendEnrichment(report, title, body string) string {
	if strings.TrimSpace(body) == "" {
		return report
	}
	var b strings.Builder
	b.WriteString(report)
	if !strings.HasSuffix(report, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n---\n\n")
	b.WriteString(enrichmentStart + "\n")
	if title != "" {
		b.WriteString("## " + title + "\n\n")
	}
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n" + enrichmentEnd + "\n")
	return b.String()
}
