package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rjkroege/inkshelf/view"
)

// Node describes one view of a snapshot.
type Node struct {
	Type     string `yaml:"type"`
	Tag      string `yaml:"tag,omitempty"`
	ID       uint64 `yaml:"id"`
	Rect     string `yaml:"rect"`
	Children []Node `yaml:"children,omitempty"`
}

// Snapshot describes the tree rooted at v.
func Snapshot(v view.View) Node {
	n := Node{
		Type: strings.TrimPrefix(fmt.Sprintf("%T", v), "*"),
		ID:   uint64(v.ID()),
		Rect: v.Rect().String(),
	}
	if v.Tag() != view.NoTag {
		n.Tag = v.Tag().String()
	}
	for _, c := range v.Children() {
		n.Children = append(n.Children, Snapshot(c))
	}
	return n
}

// WriteSnapshot saves the tree rooted at v as YAML in dir and returns the
// path written.
func WriteSnapshot(v view.View, dir string, at time.Time) (string, error) {
	data, err := yaml.Marshal(Snapshot(v))
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	path := filepath.Join(dir, "screenshot-"+at.Format("20060102-150405")+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}
