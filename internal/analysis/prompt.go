package analysis

import (
	"bytes"
	"fmt"
	"text/template"
)

const analysisSystemPrompt = `You are a technical skill evaluator. You assess code submissions and report
the author's strengths, skill gaps, concrete suggestions, a confidence score
(0-100) and an estimated proficiency level (1-5). Respond only with JSON
conforming to the provided schema. Keep skill gap phrases short (one to
three words naming a concept, e.g. "loops" or "error handling"), never full
sentences.`

var analysisMessageTmpl = template.Must(template.New("analysis").Parse(
	`Analyze the following {{.Language}} code.
{{- if .Diagnostics}}

Compiler/runtime diagnostics observed:
{{.Diagnostics}}
{{- end}}

Code:
{{.Code}}
`))

type promptInput struct {
	Language    string
	Code        string
	Diagnostics string
}

func buildAnalysisMessage(language, code, diagnostics string) (string, error) {
	var b bytes.Buffer
	err := analysisMessageTmpl.Execute(&b, promptInput{
		Language:    language,
		Code:        code,
		Diagnostics: diagnostics,
	})
	if err != nil {
		return "", fmt.Errorf("build analysis prompt: %w", err)
	}
	return b.String(), nil
}
