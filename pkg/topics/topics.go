// Package topics provides the markdown help topics shown by
// `jt --topic <name>`.
package topics

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/jt/pkg/errors"
)

//go:embed content/*.md
var content embed.FS

// ListName is the topic name that lists every topic
const ListName = "topics"

// Topic is one help page
type Topic struct {
	Name    string
	Content string
}

// Manager looks up and renders topics
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Default returns a manager over the built-in topics
func Default(r Renderer) *Manager {
	m, err := Load(content, "content", r)
	if err != nil {
		// the embedded tree is fixed at build time
		panic(err)
	}
	return m
}

// Load reads every .md file under dir in fsys
func Load(fsys fs.FS, dir string, r Renderer) (*Manager, error) {
	if r == nil {
		r = PlainRenderer{}
	}
	m := &Manager{topics: make(map[string]*Topic), renderer: r}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		m.topics[name] = &Topic{Name: name, Content: string(data)}
	}
	return m, nil
}

// Get retrieves a topic by name. Leading dashes are ignored so
// `--topic --compact` style lookups work.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the sorted topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show returns the rendered topic, or the topic list for ListName
func (m *Manager) Show(name string) (string, error) {
	if strings.TrimLeft(name, "-") == ListName {
		return m.list(), nil
	}
	t, ok := m.Get(name)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "Unknown help topic: %s", name).
			WithDetail("Available topics: " + strings.Join(m.Names(), ", ")).
			WithSuggestion("Run 'jt --topic topics' to list topics")
	}
	return m.renderer.Render(t.Content), nil
}

func (m *Manager) list() string {
	var b strings.Builder
	b.WriteString("Available help topics:\n\n")
	for _, name := range m.Names() {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	b.WriteString("\nUse 'jt --topic <topic>' to read about a specific topic.")
	return b.String()
}
