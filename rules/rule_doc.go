package rules

import (
	"fmt"

	"github.com/structgen/structgen/model"
	"github.com/structgen/structgen/schema"
)

// The doc rules copy title, description and $comment onto whichever construct
// is being built. They run before any structural rule and are the only rules
// shared verbatim between types and fields.

func (f *Factory) applyTitle(node *schema.Node, target any) error {
	s, ok := node.Str("title")
	if !ok {
		return nil
	}
	return setDoc(target, func(d *model.Doc) { d.Title = s })
}

func (f *Factory) applyDescription(node *schema.Node, target any) error {
	s, ok := node.Str("description")
	if !ok {
		return nil
	}
	return setDoc(target, func(d *model.Doc) { d.Description = s })
}

func (f *Factory) applyComment(node *schema.Node, target any) error {
	s, ok := node.Str("$comment")
	if !ok {
		return nil
	}
	return setDoc(target, func(d *model.Doc) { d.Comment = s })
}

func setDoc(target any, set func(*model.Doc)) error {
	switch v := target.(type) {
	case *model.Type:
		set(&v.Doc)
	case *model.Field:
		set(&v.Doc)
	default:
		return fmt.Errorf("rules: doc rules expect *model.Type or *model.Field, got %T", target)
	}
	return nil
}
