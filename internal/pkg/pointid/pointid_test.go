package pointid

import "testing"

func TestFromProductID(t *testing.T) {
	// Known derivation; changing it would orphan every existing point.
	got := FromProductID("507f1f77bcf86cd799439011")
	want := "ee0ed452-9acc-551c-beeb-f7c8d6d00853"
	if got != want {
		t.Errorf("FromProductID() = %s, want %s", got, want)
	}
}

func TestFromProductIDStable(t *testing.T) {
	a := FromProductID("65f2a77f9d1e8b0001a3c111")
	b := FromProductID("65f2a77f9d1e8b0001a3c111")
	if a != b {
		t.Errorf("same input produced different point ids: %s vs %s", a, b)
	}

	other := FromProductID("65f2a77f9d1e8b0001a3c222")
	if a == other {
		t.Errorf("different inputs produced the same point id: %s", a)
	}
}
