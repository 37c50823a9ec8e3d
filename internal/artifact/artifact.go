package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/render"
	"github.com/imamik/kscaffold/internal/util/naming"
)

// Renderer turns a template reference and parameters into text.
type Renderer interface {
	Render(ref string, params map[string]any) (string, error)
}

// Artifact is one generated file of an application.
type Artifact struct {
	Kind      Kind
	AppName   string
	OutputDir string

	store    Store
	renderer Renderer
	log      logr.Logger
}

// Option configures an Artifact.
type Option func(*Artifact)

// WithStore sets where the artifact is persisted.
func WithStore(s Store) Option {
	return func(a *Artifact) {
		a.store = s
	}
}

// WithRenderer sets the template renderer.
func WithRenderer(r Renderer) Option {
	return func(a *Artifact) {
		a.renderer = r
	}
}

// WithLogger sets the logger used to report reload misses.
func WithLogger(log logr.Logger) Option {
	return func(a *Artifact) {
		a.log = log
	}
}

// New creates an artifact writing to the local filesystem with the embedded
// templates unless overridden by opts.
func New(kind Kind, appName, outputDir string, opts ...Option) *Artifact {
	a := &Artifact{
		Kind:      kind,
		AppName:   appName,
		OutputDir: outputDir,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.store == nil {
		a.store = NewOSFileStore()
	}
	if a.renderer == nil {
		a.renderer = render.New()
	}
	return a
}

// All returns one artifact per kind for appName, each placed in its kind's
// directory below projectDir.
func All(appName, projectDir string, opts ...Option) []*Artifact {
	out := make([]*Artifact, 0, len(kinds))
	for _, k := range Kinds() {
		out = append(out, New(k, appName, k.Dir(projectDir), opts...))
	}
	return out
}

// Render renders the artifact with params plus its own app name.
func (a *Artifact) Render(params map[string]any) (string, error) {
	merged := maps.Clone(params)
	if merged == nil {
		merged = map[string]any{}
	}
	merged[config.ParamAppName] = a.AppName

	out, err := a.renderer.Render(a.Kind.TemplateRef(), merged)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", a.Kind, err)
	}
	return out, nil
}

// OutputPath returns where the artifact is persisted.
func (a *Artifact) OutputPath() string {
	name := a.Kind.Basename()
	if a.Kind.Qualified() {
		name = naming.ArtifactFile(a.AppName, name)
	}
	return filepath.Join(a.OutputDir, name)
}

// Persist renders the artifact, overwrites OutputPath with the result and
// returns the rendered text.
func (a *Artifact) Persist(ctx context.Context, params map[string]any) (string, error) {
	out, err := a.Render(params)
	if err != nil {
		return "", err
	}

	path := a.OutputPath()
	if err := a.store.Write(ctx, path, []byte(out)); err != nil {
		return "", &PersistError{Path: path, Err: err}
	}
	return out, nil
}

// Reload reads previously persisted content. A missing or unreadable file
// yields ok == false and a log line, never an error.
func (a *Artifact) Reload(ctx context.Context) (content string, ok bool) {
	path := a.OutputPath()
	data, err := a.store.Read(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.log.Info("Artifact not found, skipping", "kind", a.Kind.String(), "path", path)
		} else {
			a.log.Info("Artifact could not be read, skipping", "kind", a.Kind.String(), "path", path, "error", err.Error())
		}
		return "", false
	}
	return string(data), true
}
