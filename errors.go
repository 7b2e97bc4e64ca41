package structgen

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnresolvableReference = "unresolvable_reference"
	CodeCyclicLoad            = "cyclic_load"
	CodeAmbiguousType         = "ambiguous_type"
	CodeUnsupportedConstruct  = "unsupported_construct"
	CodeUnknownFormat         = "unknown_format"
	CodeParseError            = "parse_error"
	CodeNotFound              = "not_found"
)

// ErrNotFound is returned by Fetcher implementations when a URI has no
// content. The schema store wraps it into an UnresolvableReferenceError
// carrying the offending reference.
var ErrNotFound = errors.New("structgen: schema not found")

// Issue records one non-fatal finding surfaced during generation, located by
// the canonical URI of the schema node that produced it.
type Issue struct {
	URI     string // canonical URI + JSON pointer of the offending node
	Code    string // one of the codes listed above
	Message string
	Keyword string // optional: the schema keyword involved
	Cause   error  // optional: underlying error
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.URI)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from err when possible.
func AsIssues(err error) (Issues, bool) {
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// AppendIssues appends items, allocating the slice lazily.
func AppendIssues(iss Issues, more ...Issue) Issues {
	if len(more) == 0 {
		return iss
	}
	return append(iss, more...)
}

// UnresolvableReferenceError reports a $ref that could not be fetched or
// parsed. It is fatal: the type graph would be left inconsistent.
type UnresolvableReferenceError struct {
	Ref   string // the reference as written
	Base  string // the base URI it was resolved against ("" for absolute refs)
	Cause error
}

func (e *UnresolvableReferenceError) Error() string {
	if e.Base != "" {
		return fmt.Sprintf("structgen: unresolvable reference %q (base %q): %v", e.Ref, e.Base, e.Cause)
	}
	return fmt.Sprintf("structgen: unresolvable reference %q: %v", e.Ref, e.Cause)
}

func (e *UnresolvableReferenceError) Unwrap() error { return e.Cause }

// CyclicLoadError reports re-entrant resolution of a URI that is currently
// mid-load. This is a fetch-time cycle, distinct from structural recursion in
// schema content, which the type graph handles via identity lookup.
type CyclicLoadError struct {
	URI string
}

func (e *CyclicLoadError) Error() string {
	return fmt.Sprintf("structgen: cyclic load of %q: document fetch re-entered while in flight", e.URI)
}

// AmbiguousTypeError reports two schema nodes whose names normalize to the
// same identifier within one container and cannot be disambiguated.
type AmbiguousTypeError struct {
	Name      string // the colliding normalized identifier
	Container string
	First     string // canonical URI of the earlier claimant
	Second    string // canonical URI of the later claimant
}

func (e *AmbiguousTypeError) Error() string {
	return fmt.Sprintf("structgen: ambiguous type name %q in %q: %s vs %s", e.Name, e.Container, e.First, e.Second)
}

// UnsupportedConstructError reports a keyword combination the rule set cannot
// represent. It is recoverable: the construct is skipped with a warning and
// generation continues.
type UnsupportedConstructError struct {
	URI     string
	Keyword string
	Reason  string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("structgen: unsupported construct %q at %s: %s", e.Keyword, e.URI, e.Reason)
}
