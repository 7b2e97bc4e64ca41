package naming_test

import (
	"testing"

	structgen "github.com/structgen/structgen"
	"github.com/structgen/structgen/naming"
)

func TestTypeName(t *testing.T) {
	n := naming.New(structgen.FieldCamel)
	cases := []struct {
		in   string
		want string
	}{
		{"address", "Address"},
		{"shipping_address", "ShippingAddress"},
		{"shipping-address", "ShippingAddress"},
		{"shipping address", "ShippingAddress"},
		{"3d model", "V3dModel"},
		{"???", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := n.TypeName(c.in); got != c.want {
			t.Errorf("TypeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFieldNameCases(t *testing.T) {
	cases := []struct {
		fieldCase structgen.FieldCase
		in        string
		want      string
	}{
		{structgen.FieldCamel, "first_name", "firstName"},
		{structgen.FieldCamel, "First Name", "firstName"},
		{structgen.FieldPascal, "first_name", "FirstName"},
		{structgen.FieldSnake, "firstName", "first_name"},
		{structgen.FieldCamel, "type", "type_"},
		{structgen.FieldCamel, "1st", "V1st"},
	}
	for _, c := range cases {
		n := naming.New(c.fieldCase)
		if got := n.FieldName(c.in); got != c.want {
			t.Errorf("FieldName(%q) with %s = %q, want %q", c.in, c.fieldCase, got, c.want)
		}
	}
}

func TestEnumMemberName(t *testing.T) {
	n := naming.New(structgen.FieldCamel)
	cases := []struct {
		in   any
		want string
	}{
		{"active", "ACTIVE"},
		{"in progress", "IN_PROGRESS"},
		{"A-1", "A_1"},
		{"", "EMPTY"},
		{nil, "NULL"},
		{float64(42), "V42"},
		{true, "TRUE"},
	}
	for _, c := range cases {
		if got := n.EnumMemberName(c.in); got != c.want {
			t.Errorf("EnumMemberName(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestScopeClaim(t *testing.T) {
	s := naming.NewScope()
	if got := s.Claim("Name", "a"); got != "Name" {
		t.Fatalf("first claim = %q, want Name", got)
	}
	// same owner is idempotent
	if got := s.Claim("Name", "a"); got != "Name" {
		t.Fatalf("re-claim by same owner = %q, want Name", got)
	}
	// different owner gets a deterministic suffix
	if got := s.Claim("Name", "b"); got != "Name_2" {
		t.Fatalf("colliding claim = %q, want Name_2", got)
	}
	if got := s.Claim("Name", "c"); got != "Name_3" {
		t.Fatalf("third claim = %q, want Name_3", got)
	}
}

func TestScopeClaimIndexed(t *testing.T) {
	s := naming.NewScope()
	if got := s.ClaimIndexed("A", "0", 0); got != "A" {
		t.Fatalf("claim 0 = %q", got)
	}
	if got := s.ClaimIndexed("A_1", "1", 1); got != "A_1" {
		t.Fatalf("claim 1 = %q", got)
	}
	if got := s.ClaimIndexed("A", "2", 2); got != "A_2" {
		t.Fatalf("claim 2 = %q, want A_2", got)
	}
}
