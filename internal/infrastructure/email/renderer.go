package email

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	texttemplate "text/template"

	"gympoint/internal/application/mail"
	mailtemplate "gympoint/internal/infrastructure/template"
	"gympoint/internal/shared/services/markdown"
)

type TemplateSource interface {
	Get(name string) (mailtemplate.MailTemplate, bool)
}

type parsedTemplate struct {
	subject *texttemplate.Template
	body    *texttemplate.Template
}

// TemplateRenderer executes mail templates and produces the plain-text and
// HTML parts. The markdown body is the text part; its rendering is the HTML.
type TemplateRenderer struct {
	source   TemplateSource
	markdown markdown.Service
	funcs    texttemplate.FuncMap

	mu     sync.Mutex
	parsed map[string]*parsedTemplate
}

func NewTemplateRenderer(source TemplateSource, md markdown.Service, formatter *Formatter) *TemplateRenderer {
	return &TemplateRenderer{
		source:   source,
		markdown: md,
		funcs: texttemplate.FuncMap{
			"brl":    formatter.BRL,
			"name":   formatter.Name,
			"date":   formatter.Date,
			"months": formatter.Months,
		},
		parsed: make(map[string]*parsedTemplate),
	}
}

func (r *TemplateRenderer) Render(name string, data interface{}) (*mail.Content, error) {
	tpl, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	subject, err := execute(tpl.subject, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render subject of %s mail: %w", name, err)
	}
	body, err := execute(tpl.body, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render body of %s mail: %w", name, err)
	}

	html, err := r.markdown.ToSafeHTML(body)
	if err != nil {
		return nil, err
	}

	return &mail.Content{
		Subject: strings.TrimSpace(subject),
		Text:    body,
		HTML:    html,
	}, nil
}

func (r *TemplateRenderer) lookup(name string) (*parsedTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tpl, ok := r.parsed[name]; ok {
		return tpl, nil
	}

	src, ok := r.source.Get(name)
	if !ok {
		return nil, fmt.Errorf("mail template %q not found", name)
	}

	subject, err := texttemplate.New(name + ".subject").Funcs(r.funcs).Option("missingkey=error").Parse(src.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subject of %s mail: %w", name, err)
	}
	body, err := texttemplate.New(name + ".body").Funcs(r.funcs).Option("missingkey=error").Parse(src.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse body of %s mail: %w", name, err)
	}

	tpl := &parsedTemplate{subject: subject, body: body}
	r.parsed[name] = tpl
	return tpl, nil
}

func execute(tpl *texttemplate.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
