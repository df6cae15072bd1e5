// internal/handlers/essayreview/prompt.go
package essayreview

import "strings"

const systemInstruction = `You are an experienced admissions-essay reviewer for international students. ` +
	`Review the essay and respond with strict JSON only, no narration, using this schema: ` +
	`{"feedback":{"overallScore":number(0-100),"summary":string,"strengths":string[],"improvements":string[],` +
	`"structureFeedback":string,"suggestedEdits":string[]}}. ` +
	`Be specific and constructive; reference the essay's own wording where useful.`

func buildUserPrompt(req *Request) string {
	var sb strings.Builder
	if req.EssayType != "" {
		sb.WriteString("Essay type: ")
		sb.WriteString(req.EssayType)
		sb.WriteString("\n")
	}
	if req.Prompt != "" {
		sb.WriteString("Essay prompt: ")
		sb.WriteString(req.Prompt)
		sb.WriteString("\n")
	}
	sb.WriteString("\nEssay:\n")
	sb.WriteString(req.Essay)
	return sb.String()
}
