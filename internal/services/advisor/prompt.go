package advisor

import (
	"fmt"
	"strings"
)

// SystemInstruction frames the model as a remediation author for technical
// SEO findings. It is prepended verbatim to every request.
const SystemInstruction = `You are a senior technical SEO engineer writing remediation plans for a site audit.
Write implementation-ready guidance in Markdown. Tailor the depth of the plan to the
severity implied by the score: low scores demand urgent, detailed remediation while
near-target scores only need refinement steps. Every plan must name concrete
acceptance criteria and the role responsible for each step (developer, SEO analyst,
content editor, or DevOps). Do not restate the finding back to the reader; go
straight to what must change.`

// BuildPrompt renders the full request text for one finding: the system
// framing followed by the finding details and the required output sections.
func BuildPrompt(in Input) string {
	var b strings.Builder
	b.WriteString(SystemInstruction)
	b.WriteString("\n\n")
	b.WriteString(UserInstruction(in))
	return b.String()
}

// UserInstruction renders the finding-specific portion of the prompt. The
// auditor's analysis is quoted verbatim so the model reacts to the observed
// evidence rather than the category label alone.
func UserInstruction(in Input) string {
	var b strings.Builder

	b.WriteString("## Audit finding\n\n")
	fmt.Fprintf(&b, "- Inspection element: %s\n", orUnspecified(in.Element))
	fmt.Fprintf(&b, "- Issue category: %s\n", orUnspecified(in.Category))
	fmt.Fprintf(&b, "- Issue sub-category: %s\n", orUnspecified(in.Subcategory))
	fmt.Fprintf(&b, "- Current score: %s (target score: 9)\n", orUnspecified(in.Score))

	b.WriteString("\n## Auditor analysis\n\n")
	analysis := strings.TrimSpace(in.Analysis)
	if analysis == "" {
		analysis = "No analysis was recorded for this finding."
	}
	b.WriteString(analysis)

	b.WriteString("\n\n## Required output\n\n")
	b.WriteString(`Respond with these numbered sections:
1. Problem summary (two sentences maximum)
2. Business impact of leaving it unfixed
3. Step-by-step remediation plan
4. Acceptance criteria for reaching the target score
5. Owner per step (developer, SEO analyst, content editor, or DevOps)
6. Estimated effort (hours or days)`)

	return b.String()
}

func orUnspecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "not specified"
	}
	return strings.TrimSpace(value)
}
