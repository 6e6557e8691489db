package order

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestFormatConfirmation(t *testing.T) {
	cases := []struct {
		name  string
		state FormState
		want  string
	}{
		{
			name:  "single topping",
			state: FormState{FullName: "Jane Doe", Size: SizeMedium, Toppings: []string{"Pepperoni"}},
			want:  "Thank you for your order, Jane Doe! Your medium pizza with 1 topping is on the way.",
		},
		{
			name:  "no toppings",
			state: FormState{FullName: "Bob", Size: SizeSmall},
			want:  "Thank you for your order, Bob! Your small pizza with no toppings is on the way.",
		},
		{
			name:  "many toppings",
			state: FormState{FullName: "Ana Maria", Size: SizeLarge, Toppings: []string{"Ham", "Pineapple", "Mushrooms"}},
			want:  "Thank you for your order, Ana Maria! Your large pizza with 3 toppings is on the way.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatConfirmation(tc.state); got != tc.want {
				t.Fatalf("confirmation mismatch:\nwant %q\ngot  %q", tc.want, got)
			}
		})
	}
}

func TestSizeWordAndLabel(t *testing.T) {
	want := map[Size][2]string{
		SizeSmall:  {"small", "Small"},
		SizeMedium: {"medium", "Medium"},
		SizeLarge:  {"large", "Large"},
	}
	for size, pair := range want {
		if got := size.Word(); got != pair[0] {
			t.Fatalf("%s word: want %q, got %q", size, pair[0], got)
		}
		if got := size.Label(); got != pair[1] {
			t.Fatalf("%s label: want %q, got %q", size, pair[1], got)
		}
		if !size.Valid() {
			t.Fatalf("expected %s to be valid", size)
		}
	}
	if SizeNone.Valid() || Size("XL").Valid() {
		t.Fatalf("expected empty and unknown sizes to be invalid")
	}
}

func TestFormState_ToppingSetSemantics(t *testing.T) {
	state := NewFormState()
	if !state.AddTopping("Ham") || !state.AddTopping("Pepperoni") {
		t.Fatalf("expected first additions to succeed")
	}
	if state.AddTopping("Ham") {
		t.Fatalf("expected duplicate addition to be ignored")
	}
	if diff := cmp.Diff([]string{"Ham", "Pepperoni"}, state.Toppings); diff != "" {
		t.Fatalf("toppings mismatch (-want +got):\n%s", diff)
	}
	if !state.RemoveTopping("Ham") || state.RemoveTopping("Ham") {
		t.Fatalf("expected single removal")
	}

	snapshot := state.Clone()
	state.AddTopping("Pineapple")
	if diff := cmp.Diff([]string{"Pepperoni"}, snapshot.Toppings); diff != "" {
		t.Fatalf("snapshot aliased live state (-want +got):\n%s", diff)
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	want := []string{"Pepperoni", "Green Peppers", "Pineapple", "Mushrooms", "Ham"}
	if diff := cmp.Diff(want, catalog.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	opt, ok := catalog.Lookup("Pineapple")
	if !ok || opt.ID != "3" {
		t.Fatalf("lookup pineapple: got %+v, %v", opt, ok)
	}
	if _, ok := catalog.Lookup("Anchovies"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestParseCatalog_YAMLAndSanitize(t *testing.T) {
	raw := []byte(`
toppings:
  - id: olive
    label: " Olives "
    icon: '<svg viewBox="0 0 8 8"><script>alert(1)</script><circle r="4" onclick="x()"></circle></svg>'
  - label: Basil
`)
	catalog, err := ParseCatalog(raw, "toppings.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"Olives", "Basil"}, catalog.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	olive, _ := catalog.Lookup("Olives")
	if strings.Contains(olive.Icon, "<script") || strings.Contains(olive.Icon, "onclick") {
		t.Fatalf("icon was not sanitised: %q", olive.Icon)
	}
	if !strings.Contains(olive.Icon, "<circle") {
		t.Fatalf("expected circle to survive sanitising: %q", olive.Icon)
	}
	basil, _ := catalog.Lookup("Basil")
	if basil.ID != "2" {
		t.Fatalf("expected positional id, got %q", basil.ID)
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	if _, err := ParseCatalog([]byte("  "), "empty.json"); err == nil {
		t.Fatalf("expected empty document error")
	}
	if _, err := ParseCatalog([]byte(`{"toppings":[{"label":"Ham"},{"label":"Ham"}]}`), "dup.json"); err == nil {
		t.Fatalf("expected duplicate label error")
	}
	if _, err := ParseCatalog([]byte(`{"toppings":[]}`), "none.json"); err == nil {
		t.Fatalf("expected empty catalog error")
	}
}

func TestLoadCatalogFS(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.json": {Data: []byte(`{"toppings":[{"id":"a","label":"Anchovies"}]}`)},
	}
	catalog, err := LoadCatalogFS(fsys, "catalog.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("expected one topping, got %d", catalog.Len())
	}
	if _, err := LoadCatalogFS(fsys, "missing.json"); err == nil {
		t.Fatalf("expected missing file error")
	}
}
