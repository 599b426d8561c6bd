package company

import "testing"

func TestName(t *testing.T) {
	name, ok := Name(0x004C)
	if !ok || name != "Apple, Inc." {
		t.Fatalf("unexpected result: %q %v", name, ok)
	}
	if _, ok := Name(0x7A7A); ok {
		t.Fatal("unexpected hit for unassigned identifier")
	}
}
