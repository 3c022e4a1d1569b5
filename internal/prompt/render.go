package prompt

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"jeeval/internal/dataset"
	"jeeval/internal/question"
)

//go:embed templates/*.tmpl
var defaultTemplates embed.FS

// ErrMissingTemplate indicates no template exists for a question type.
var ErrMissingTemplate = errors.New("missing prompt template")

// Prompt is the text sent for one question plus the images it references,
// in the order they appear.
type Prompt struct {
	Text   string
	Images []string
}

// Renderer renders question bank rows into prompts.
type Renderer struct {
	templates map[question.Type]*template.Template
	imageBase string
}

type templateData struct {
	Question string
	Options  []string
}

var funcs = template.FuncMap{
	"letter": func(i int) string { return string(rune('A' + i)) },
}

// NewRenderer loads the built-in templates, replacing any with <type>.tmpl
// files found in overrideDir. Image links are resolved against imageBase.
func NewRenderer(overrideDir, imageBase string) (*Renderer, error) {
	renderer := &Renderer{templates: map[question.Type]*template.Template{}, imageBase: imageBase}
	for _, qt := range question.Types() {
		name := templateName(qt)
		source, err := readTemplate(overrideDir, name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		renderer.templates[qt] = tmpl
	}
	return renderer, nil
}

func templateName(qt question.Type) string {
	return strings.ToLower(string(qt)) + ".tmpl"
}

func readTemplate(overrideDir, name string) (string, error) {
	if overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(overrideDir, name))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("read template %s: %w", name, err)
		}
	}
	data, err := defaultTemplates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("%w %s", ErrMissingTemplate, name)
	}
	return string(data), nil
}

// Render builds the prompt for a row. Options are listed for every type
// except numeric questions.
func (r *Renderer) Render(row dataset.Row) (Prompt, error) {
	qt, err := question.ParseType(row.Type)
	if err != nil {
		return Prompt{}, fmt.Errorf("%s: %w", row.Label(), err)
	}
	tmpl, ok := r.templates[qt]
	if !ok {
		return Prompt{}, fmt.Errorf("%s: %w %s", row.Label(), ErrMissingTemplate, templateName(qt))
	}
	data := templateData{Question: row.Text}
	if qt.HasOptions() {
		data.Options = row.Options[:]
	}
	var builder strings.Builder
	if err := tmpl.Execute(&builder, data); err != nil {
		return Prompt{}, fmt.Errorf("%s: render: %w", row.Label(), err)
	}
	text := builder.String()
	images := question.ImagePaths(text)
	for i, image := range images {
		if r.imageBase != "" && !filepath.IsAbs(image) {
			images[i] = filepath.Join(r.imageBase, image)
		}
	}
	return Prompt{Text: question.StripImageLinks(text), Images: images}, nil
}
