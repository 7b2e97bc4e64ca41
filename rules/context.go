package rules

import (
	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/i18n"
	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/naming"
	"github.com/structgen/structgen/schema"
)

// Context carries the per-run state threaded through every rule invocation:
// the in-flight $ref guard and the collected warnings. It is owned by the
// single traversal call stack and never shared across runs. Naming scopes
// live on the factory instead, because a later run against the same store
// must still see the identifiers claimed by earlier runs.
type Context struct {
	factory   *Factory
	resolving map[string]bool // node ids on the current pure-$ref chain
	warnings  structgen.Issues
}

// NewContext returns a fresh per-run context for the factory.
func (f *Factory) NewContext() *Context {
	return &Context{
		factory:   f,
		resolving: map[string]bool{},
	}
}

// Factory returns the dispatch engine, for recursive sub-rule calls.
func (rc *Context) Factory() *Factory { return rc.factory }

// Store returns the schema store of the run.
func (rc *Context) Store() *schema.Store { return rc.factory.store }

// Warnings returns the recoverable findings collected so far, in encounter
// order.
func (rc *Context) Warnings() structgen.Issues { return rc.warnings }

// warn records a recoverable finding and logs it with the offending schema
// location.
func (rc *Context) warn(code, keyword string, node *schema.Node, reason string) {
	uri := ""
	if node != nil {
		uri = node.ID()
	}
	msg := i18n.T(code, nil)
	if reason != "" {
		msg = msg + ": " + reason
	}
	rc.factory.log.Warn().
		Str("uri", uri).
		Str("keyword", keyword).
		Str("code", code).
		Msg(msg)
	rc.warnings = structgen.AppendIssues(rc.warnings, structgen.Issue{
		URI:     uri,
		Code:    code,
		Keyword: keyword,
		Message: msg,
	})
}

func (rc *Context) typeScope(container string) *naming.Scope {
	s, ok := rc.factory.typeScopes[container]
	if !ok {
		s = naming.NewScope()
		rc.factory.typeScopes[container] = s
	}
	return s
}

func (rc *Context) fieldScope(t *model.Type) *naming.Scope {
	s, ok := rc.factory.fieldScopes[t]
	if !ok {
		s = naming.NewScope()
		rc.factory.fieldScopes[t] = s
	}
	return s
}
