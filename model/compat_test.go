package model_test

import (
	"testing"

	"github.com/structgen/structgen/model"
)

func obj(name string, fields ...*model.Field) *model.Type {
	t := model.NewType("", model.KindObject, name, "types")
	for _, f := range fields {
		t.AddField(f)
	}
	return t
}

func TestCompatibleScalars(t *testing.T) {
	if !model.Compatible(model.Primitive(model.KindString), model.Primitive(model.KindString)) {
		t.Fatalf("identical primitives must be compatible")
	}
	if model.Compatible(model.Primitive(model.KindString), model.Primitive(model.KindInteger)) {
		t.Fatalf("different kinds must not be compatible")
	}
	a := model.Primitive(model.KindString)
	a.Format = "uuid"
	if model.Compatible(a, model.Primitive(model.KindString)) {
		t.Fatalf("format refinement must participate in compatibility")
	}
}

func TestCompatibleObjects(t *testing.T) {
	a := obj("A",
		&model.Field{Name: "id", JSONName: "id", Type: model.Primitive(model.KindString), Required: true},
		&model.Field{Name: "n", JSONName: "n", Type: model.Primitive(model.KindInteger)},
	)
	b := obj("B",
		&model.Field{Name: "id", JSONName: "id", Type: model.Primitive(model.KindString), Required: true},
		&model.Field{Name: "n", JSONName: "n", Type: model.Primitive(model.KindInteger)},
	)
	if !model.Compatible(a, b) {
		t.Fatalf("structurally equal objects must be compatible")
	}
	c := obj("C",
		&model.Field{Name: "id", JSONName: "id", Type: model.Primitive(model.KindString)},
		&model.Field{Name: "n", JSONName: "n", Type: model.Primitive(model.KindInteger)},
	)
	if model.Compatible(a, c) {
		t.Fatalf("requiredness differences must break compatibility")
	}
}

func TestCompatibleRecursive(t *testing.T) {
	// Two independently built self-referential types: node { next: node }.
	a := obj("NodeA")
	a.AddField(&model.Field{Name: "next", JSONName: "next", Type: a})
	b := obj("NodeB")
	b.AddField(&model.Field{Name: "next", JSONName: "next", Type: b})
	if !model.Compatible(a, b) {
		t.Fatalf("isomorphic recursive types must be compatible")
	}
}

func TestCanExtend(t *testing.T) {
	super := obj("Base", &model.Field{Name: "id", JSONName: "id", Type: model.Primitive(model.KindString)})
	child := obj("Child", &model.Field{Name: "extra", JSONName: "extra", Type: model.Primitive(model.KindInteger)})
	if !model.CanExtend(child, super) {
		t.Fatalf("disjoint fields must allow extension")
	}
	clash := obj("Clash", &model.Field{Name: "id", JSONName: "id", Type: model.Primitive(model.KindInteger)})
	if model.CanExtend(clash, super) {
		t.Fatalf("conflicting redeclaration must block extension")
	}
	if model.CanExtend(super, super) {
		t.Fatalf("a type must not extend itself")
	}
	if model.CanExtend(child, model.Primitive(model.KindString)) {
		t.Fatalf("non-object supertypes must be rejected")
	}
}
