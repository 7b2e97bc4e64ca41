package model

// Compatible reports whether a and b are structurally equivalent: same shape,
// same fields by name/requiredness/type, same element type, same enum
// members. Identity-equal types are trivially compatible, which also
// terminates comparison of recursive types: a pair under comparison is
// assumed compatible while its components are examined.
func Compatible(a, b *Type) bool {
	return compatible(a, b, map[[2]*Type]bool{})
}

func compatible(a, b *Type, seen map[[2]*Type]bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Format != b.Format {
		return false
	}
	key := [2]*Type{a, b}
	if seen[key] {
		return true // coinductive: assume the pair holds while checking it
	}
	seen[key] = true

	switch a.Kind {
	case KindObject:
		if a.Sealed != b.Sealed {
			return false
		}
		if (a.Extra == nil) != (b.Extra == nil) {
			return false
		}
		if a.Extra != nil && !compatible(a.Extra, b.Extra, seen) {
			return false
		}
		if !compatible(a.Super, b.Super, seen) {
			return false
		}
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for _, fa := range a.Fields {
			fb, ok := b.FieldByName(fa.Name)
			if !ok {
				return false
			}
			if fa.Required != fb.Required || fa.JSONName != fb.JSONName {
				return false
			}
			if !compatible(fa.Type, fb.Type, seen) {
				return false
			}
		}
		return true
	case KindEnum:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i].Name != b.Members[i].Name || a.Members[i].Value != b.Members[i].Value {
				return false
			}
		}
		return true
	case KindArray:
		if a.Unique != b.Unique {
			return false
		}
		return compatible(a.Elem, b.Elem, seen)
	default:
		return true
	}
}

// CanExtend reports whether child may safely declare super as its supertype:
// super must be an object type, and any field the child redeclares must be
// compatible with the inherited one.
func CanExtend(child, super *Type) bool {
	if child == nil || super == nil {
		return false
	}
	if child.Kind != KindObject || super.Kind != KindObject {
		return false
	}
	if child == super {
		return false
	}
	for _, sf := range super.Fields {
		cf, ok := child.FieldByName(sf.Name)
		if !ok {
			continue
		}
		if !Compatible(cf.Type, sf.Type) {
			return false
		}
	}
	return true
}
