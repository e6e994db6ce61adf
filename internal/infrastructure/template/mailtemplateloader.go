package template

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gympoint/internal/shared/logger"
)

//go:embed defaults/mail.yaml
var defaultCatalog []byte

// MailTemplate is the source of one e-mail: a subject line and a markdown body.
// Both are Go text/template sources.
type MailTemplate struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type catalog struct {
	Templates map[string]MailTemplate `yaml:"templates"`
}

// MailTemplateLoader holds the built-in mail templates, optionally overridden
// by files in a directory.
type MailTemplateLoader struct {
	templates map[string]MailTemplate
	path      string
	logger    logger.Interface
}

func NewMailTemplateLoader(path string, logger logger.Interface) *MailTemplateLoader {
	return &MailTemplateLoader{
		templates: make(map[string]MailTemplate),
		path:      path,
		logger:    logger,
	}
}

// Load reads the embedded catalog and then applies overrides from the
// configured directory. An override file is named {template}.yaml or
// {template}.yml and holds a single MailTemplate.
func (l *MailTemplateLoader) Load() error {
	var defaults catalog
	if err := yaml.Unmarshal(defaultCatalog, &defaults); err != nil {
		return fmt.Errorf("failed to parse built-in mail templates: %w", err)
	}
	for name, tpl := range defaults.Templates {
		l.templates[name] = tpl
	}

	if l.path == "" {
		return nil
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		l.logger.Warnw("mail templates directory not found, using built-in templates", "path", l.path)
		return nil
	}

	overridden := 0
	for name := range defaults.Templates {
		for _, ext := range []string{".yaml", ".yml"} {
			filePath := filepath.Join(l.path, name+ext)

			content, err := os.ReadFile(filePath)
			if err != nil {
				if !os.IsNotExist(err) {
					l.logger.Warnw("failed to read mail template file", "file", filePath, "error", err)
				}
				continue
			}

			var tpl MailTemplate
			if err := yaml.Unmarshal(content, &tpl); err != nil {
				return fmt.Errorf("failed to parse mail template %s: %w", filePath, err)
			}
			if strings.TrimSpace(tpl.Subject) == "" || strings.TrimSpace(tpl.Body) == "" {
				return fmt.Errorf("mail template %s needs both subject and body", filePath)
			}

			l.templates[name] = tpl
			overridden++
			l.logger.Infow("loaded mail template override", "template", name, "file", filePath)
			break
		}
	}

	l.logger.Infow("mail templates loaded", "count", len(l.templates), "overridden", overridden)
	return nil
}

// Get returns the template registered under name.
func (l *MailTemplateLoader) Get(name string) (MailTemplate, bool) {
	tpl, ok := l.templates[strings.ToLower(strings.TrimSpace(name))]
	return tpl, ok
}
