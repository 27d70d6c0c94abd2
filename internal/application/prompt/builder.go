// Package prompt turns generation requests into provider instructions.
//
// Each request kind has exactly one builder. Templates are rendered with
// text/template, so user text is interpolated verbatim.
package prompt

import (
	"bytes"
	"net/url"
	"strings"
	"text/template"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/ports"
)

// VideoSearchBase is the search endpoint exercise demo links point at.
const VideoSearchBase = "https://www.youtube.com/results?search_query="

const noneValue = "None"

type builderFunc func(domain.GenerationRequest) (string, error)

var builders = map[domain.RequestKind]builderFunc{
	domain.KindFollowUp: buildFollowUp,
	domain.KindFitness:  buildFitness,
	domain.KindCooking:  buildCooking,
	domain.KindUnknown:  buildEmpty,
}

// Builder is the default ports.PromptBuilder.
type Builder struct{}

// NewBuilder returns a Builder.
func NewBuilder() Builder {
	return Builder{}
}

// Build renders the template selected by req.Kind(). An unrecognised type
// yields an empty prompt, not an error.
func (Builder) Build(req domain.GenerationRequest) (string, error) {
	return Build(req)
}

// Build is the package-level form of Builder.Build.
func Build(req domain.GenerationRequest) (string, error) {
	build, ok := builders[req.Kind()]
	if !ok {
		return "", nil
	}
	return build(req)
}

// Has reports whether kind has a registered builder.
func Has(kind domain.RequestKind) bool {
	_, ok := builders[kind]
	return ok
}

// VideoSearchURL builds the demo link target for an exercise name.
// Spaces become '+' in the query string.
func VideoSearchURL(query string) string {
	return VideoSearchBase + url.QueryEscape(strings.Join(strings.Fields(query), " "))
}

type fitnessData struct {
	Frequency  string
	Goal       string
	Experience string
	Equipment  string
	Injuries   string
	Split      string
	Notes      string
	DemoLink   string
}

var fitnessTemplate = template.Must(template.New("fitness").Parse(`You are an elite fitness coach. Create a personalized workout plan.

USER PROFILE:
- Frequency: {{.Frequency}} days/week
- Goal: {{.Goal}}
- Experience Level: {{.Experience}}
- Equipment Access: {{.Equipment}}
- Injuries/Limitations: {{.Injuries}}
- Preferred Split: {{.Split}}
- Additional Notes: {{.Notes}}

IMPORTANT FORMATTING RULES:
1. Use bold headers for days (e.g., **Day 1: Upper Body**).
2. Use bullet points for exercises.
3. IMPORTANT: Place a horizontal rule (---) between every day or major section to ensure clear visual separation.
4. For every specific exercise mentioned, create a Markdown link that searches YouTube for a tutorial. Build the search query from the exercise name and replace spaces with "+".
   Example format: [🎥 Watch Bench Press Demo]({{.DemoLink}})
5. Keep the tone encouraging but professional.`))

func buildFitness(req domain.GenerationRequest) (string, error) {
	return render(fitnessTemplate, fitnessData{
		Frequency:  req.Frequency,
		Goal:       req.Goal,
		Experience: req.Experience,
		Equipment:  req.Equipment,
		Injuries:   orNone(req.Injuries),
		Split:      req.Split,
		Notes:      orNone(req.Notes),
		DemoLink:   VideoSearchURL("how to do barbell bench press"),
	})
}

var followUpTemplate = template.Must(template.New("follow-up").Parse(`You are an elite fitness coach assisting a client with their current plan.

CURRENT PLAN:
{{.Context}}

CLIENT QUESTION:
{{.Prompt}}

INSTRUCTIONS:
1. Answer the question specifically based on the plan provided above.
2. If they ask for swaps, ensure they match the equipment constraints stated in the plan.
3. Keep your response concise and professional.`))

func buildFollowUp(req domain.GenerationRequest) (string, error) {
	return render(followUpTemplate, req)
}

// TODO: expand once the cooking form collects cuisine, diet and skill level.
const cookingPrompt = `You are a professional chef. Suggest a recipe that fits the request below and format it with Markdown headers for ingredients and steps.`

func buildCooking(req domain.GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Goal) == "" {
		return cookingPrompt, nil
	}
	return cookingPrompt + "\n\nREQUEST:\n" + req.Goal, nil
}

func buildEmpty(domain.GenerationRequest) (string, error) {
	return "", nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func orNone(value string) string {
	if value == "" {
		return noneValue
	}
	return value
}

var _ ports.PromptBuilder = Builder{}
