package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*
var templatesFS embed.FS

// Engine renders templates from a filesystem rooted at the template directory.
type Engine struct {
	fsys fs.FS
}

// New returns an Engine over the embedded templates.
func New() *Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// templates/ is part of the binary
		panic(fmt.Sprintf("embedded templates missing: %v", err))
	}
	return &Engine{fsys: sub}
}

// NewFromFS returns an Engine over fsys, used to render custom template sets.
func NewFromFS(fsys fs.FS) *Engine {
	return &Engine{fsys: fsys}
}

// Render executes the template at ref with params.
func (e *Engine) Render(ref string, params map[string]any) (string, error) {
	content, err := e.read(ref)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(path.Base(ref)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return "", &Error{Ref: ref, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", &Error{Ref: ref, Err: err}
	}

	return buf.String(), nil
}

// Refs lists every template reference the engine can resolve.
func (e *Engine) Refs() ([]string, error) {
	var refs []string
	err := fs.WalkDir(e.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			refs = append(refs, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return refs, nil
}

func (e *Engine) read(ref string) ([]byte, error) {
	if ref == "" || !fs.ValidPath(ref) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, ref)
	}
	content, err := fs.ReadFile(e.fsys, ref)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", ref, err)
	}
	return content, nil
}
