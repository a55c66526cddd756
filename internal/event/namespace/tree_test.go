package namespace

import (
	"errors"
	"sync"
	"testing"
)

func newTestTree(t *testing.T, paths ...Path) *Tree {
	t.Helper()
	tree := NewTree()
	for _, p := range paths {
		if err := tree.Insert(p); err != nil {
			t.Fatalf("Insert(%q) failed: %v", p, err)
		}
	}
	return tree
}

var samplePaths = []Path{
	"Config.read",
	"Config.update",
	"Config.State.update",
	"Cookie.listAll",
	"Cookie.State.update",
	"Cookie.State.delete",
	"Model.destroy",
	"Model.State.destroyed",
	"Model.Project.read",
	"Model.Project.State.update",
	"Model.Request.read",
}

func TestTree_ZeroValue(t *testing.T) {
	var tree Tree

	if tree.Contains("Config.read") {
		t.Error("Contains should return false for zero-value tree")
	}
	if got := tree.Match("**"); len(got) != 0 {
		t.Errorf("Match() on zero-value tree = %v, want empty", got)
	}
	if err := tree.Insert("Config.read"); err != nil {
		t.Fatalf("Insert on zero-value tree failed: %v", err)
	}
	if !tree.Contains("Config.read") {
		t.Error("Contains should return true after insert")
	}
}

func TestTree_Insert(t *testing.T) {
	tree := newTestTree(t, samplePaths...)

	if tree.Len() != len(samplePaths) {
		t.Errorf("Len() = %d, want %d", tree.Len(), len(samplePaths))
	}
	if err := tree.Insert("Config.read"); !errors.Is(err, ErrPathExists) {
		t.Errorf("duplicate Insert() error = %v, want ErrPathExists", err)
	}
	if err := tree.Insert("Config.*"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("wildcard Insert() error = %v, want ErrInvalidPath", err)
	}
	if err := tree.Insert(""); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("empty Insert() error = %v, want ErrInvalidPath", err)
	}
}

func TestTree_Freeze(t *testing.T) {
	tree := newTestTree(t, samplePaths...)
	tree.Freeze()

	if !tree.Frozen() {
		t.Fatal("Frozen() = false after Freeze()")
	}

	err := tree.Insert("Config.readAll")
	if !errors.Is(err, ErrFrozen) {
		t.Fatalf("Insert() after Freeze() error = %v, want ErrFrozen", err)
	}
	if tree.Contains("Config.readAll") {
		t.Error("frozen tree accepted a new path")
	}
	if tree.Len() != len(samplePaths) {
		t.Errorf("Len() = %d after rejected insert, want %d", tree.Len(), len(samplePaths))
	}

	// Freezing twice is harmless.
	tree.Freeze()
}

func TestTree_Match(t *testing.T) {
	tree := newTestTree(t, samplePaths...)

	tests := []struct {
		pattern Path
		want    []Path
	}{
		{"Config.*", []Path{"Config.read", "Config.update"}},
		{"Cookie.State.*", []Path{"Cookie.State.delete", "Cookie.State.update"}},
		{"Model.*.read", []Path{"Model.Project.read", "Model.Request.read"}},
		{"**.State.*", []Path{
			"Config.State.update",
			"Cookie.State.delete",
			"Cookie.State.update",
			"Model.Project.State.update",
			"Model.State.destroyed",
		}},
		{"Config.update", []Path{"Config.update"}},
		{"Config", nil},
		{"Nope.**", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			got := tree.Match(tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Match(%q)[%d] = %q, want %q", tt.pattern, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTree_MatchAgreesWithPathMatches(t *testing.T) {
	tree := newTestTree(t, samplePaths...)
	patterns := []Path{"**", "*.*", "*.State.*", "Model.**", "**.update", "Cookie.**.delete"}

	for _, pattern := range patterns {
		want := 0
		for _, p := range samplePaths {
			if p.Matches(pattern) {
				want++
			}
		}
		if got := len(tree.Match(pattern)); got != want {
			t.Errorf("Match(%q) returned %d paths, Path.Matches agrees on %d", pattern, got, want)
		}
	}
}

func TestTree_Children(t *testing.T) {
	tree := newTestTree(t, samplePaths...)

	top := tree.Children("")
	want := []string{"Config", "Cookie", "Model"}
	if len(top) != len(want) {
		t.Fatalf("Children(\"\") = %v, want %v", top, want)
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("Children(\"\")[%d] = %q, want %q", i, top[i], want[i])
		}
	}

	if !tree.IsNamespace("Model.Project") {
		t.Error("Model.Project should be a namespace")
	}
	if tree.IsNamespace("Config.read") {
		t.Error("Config.read should not be a namespace")
	}
	if got := tree.Children("Nope"); got != nil {
		t.Errorf("Children(Nope) = %v, want nil", got)
	}
}

func TestTree_ConcurrentReads(t *testing.T) {
	tree := newTestTree(t, samplePaths...)
	tree.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if len(tree.Match("**")) != len(samplePaths) {
					t.Error("concurrent Match returned wrong count")
					return
				}
			}
		}()
	}
	wg.Wait()
}
