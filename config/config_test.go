package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := `
device: kobo-forma
inverted: true
notification_delay: 2s
faves:
  - name: Slow burn
    location: /tags/slow-burn
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Device = "kobo-forma"
	want.Inverted = true
	want.NotificationDelay = 2 * time.Second
	want.Faves = []Fave{{Name: "Slow burn", Location: "/tags/slow-burn"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"rotation", "rotation: 4"},
		{"button scheme", "button_scheme: sideways"},
		{"delay", "notification_delay: -1s"},
		{"fave name", "faves:\n  - location: x"},
		{"syntax", "inverted: [true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(Default(), []byte(tt.data))
			if err == nil {
				t.Fatalf("Parse succeeded")
			}
			if diff := cmp.Diff(Default(), got); diff != "" {
				t.Errorf("failed Parse changed base (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuiltinLayouts(t *testing.T) {
	ls, err := BuiltinLayouts()
	if err != nil {
		t.Fatalf("BuiltinLayouts: %v", err)
	}
	if diff := cmp.Diff([]string{"English", "Numeric"}, ls.Names()); diff != "" {
		t.Errorf("layout names mismatch (-want +got):\n%s", diff)
	}
	en := ls["English"]
	if got := en.Output(0, 0, false); got != "q" {
		t.Errorf("Output(0,0) = %q; want q", got)
	}
	if got := en.Output(0, 0, true); got != "Q" {
		t.Errorf("shifted Output(0,0) = %q; want Q", got)
	}
	if got := en.Width(3, 3); got != 4 {
		t.Errorf("space width = %v; want 4", got)
	}
	if got := en.Output(3, 1, true); got != KeyLayout {
		t.Errorf("Output(3,1) = %q; want the layout key", got)
	}
	num := ls[NumericLayout]
	if got := num.Output(3, 1, true); got != "0" {
		t.Errorf("numeric shifted output = %q; want 0", got)
	}
	if got := num.Width(0, 0); got != 1 {
		t.Errorf("default width = %v; want 1", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name string
		l    Layout
		ok   bool
	}{
		{"ok", Layout{Name: "x", Rows: [][]string{{"a"}}}, true},
		{"no name", Layout{Rows: [][]string{{"a"}}}, false},
		{"no rows", Layout{Name: "x"}, false},
		{"empty row", Layout{Name: "x", Rows: [][]string{{}}}, false},
		{"shifted shape", Layout{Name: "x", Rows: [][]string{{"a", "b"}}, Shifted: [][]string{{"A"}}}, false},
		{"widths shape", Layout{Name: "x", Rows: [][]string{{"a", "b"}}, Widths: [][]float64{{1}}}, false},
	}
	for _, tt := range tests {
		if err := tt.l.Validate(); (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v; want ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	data := "name: Tiny\nrows:\n  - [a, \"<ret>\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	ls := make(Layouts)
	if err := ls.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	l, ok := ls["Tiny"]
	if !ok {
		t.Fatalf("Tiny layout missing: %v", ls.Names())
	}
	if !IsSpecial(l.Rows[0][1]) || IsSpecial(l.Rows[0][0]) {
		t.Errorf("IsSpecial misclassified %v", l.Rows[0])
	}
}
