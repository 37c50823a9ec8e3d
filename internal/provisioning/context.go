package provisioning

import (
	"context"

	"github.com/go-logr/logr"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	State    *State
	Observer Observer
}

// NewContext creates a new provisioning context reporting through the
// logger carried by ctx.
func NewContext(ctx context.Context) *Context {
	return &Context{
		Context:  ctx,
		State:    NewState(),
		Observer: NewLogObserver(logr.FromContextOrDiscard(ctx)),
	}
}

// WithObserver returns a shallow copy of c reporting through o.
func (c *Context) WithObserver(o Observer) *Context {
	cp := *c
	cp.Observer = o
	return &cp
}
