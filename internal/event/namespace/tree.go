package namespace

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrFrozen is returned when inserting into a frozen tree.
	ErrFrozen = errors.New("namespace tree is frozen")

	// ErrInvalidPath is returned for empty, malformed or wildcard paths.
	ErrInvalidPath = errors.New("invalid namespace path")

	// ErrPathExists is returned when a path is inserted twice.
	ErrPathExists = errors.New("namespace path already exists")
)

// Tree stores concrete paths and answers wildcard queries against them.
// Once frozen it rejects every write and is safe for unsynchronized reads
// by any number of goroutines; before that a mutex guards it.
type Tree struct {
	mu     sync.RWMutex
	root   *treeNode
	size   int
	frozen bool
}

type treeNode struct {
	children map[string]*treeNode
	leaf     bool
}

func newTreeNode() *treeNode {
	return &treeNode{children: make(map[string]*treeNode)}
}

// NewTree creates an empty, writable tree.
func NewTree() *Tree {
	return &Tree{root: newTreeNode()}
}

// Insert adds a concrete path.
func (t *Tree) Insert(p Path) error {
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.frozen {
		return fmt.Errorf("%w: cannot insert %q", ErrFrozen, p)
	}
	if t.root == nil {
		t.root = newTreeNode()
	}

	node := t.root
	for _, seg := range p.Segments() {
		child := node.children[seg]
		if child == nil {
			child = newTreeNode()
			node.children[seg] = child
		}
		node = child
	}
	if node.leaf {
		return fmt.Errorf("%w: %q", ErrPathExists, p)
	}
	node.leaf = true
	t.size++
	return nil
}

// Freeze makes the tree read-only. It is idempotent.
func (t *Tree) Freeze() {
	t.mu.Lock()
	t.frozen = true
	t.mu.Unlock()
}

// Frozen reports whether Freeze was called.
func (t *Tree) Frozen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.frozen
}

// Contains reports whether the exact path was inserted.
func (t *Tree) Contains(p Path) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(p)
	return node != nil && node.leaf
}

// IsNamespace reports whether p has children (is an inner node).
func (t *Tree) IsNamespace(p Path) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(p)
	return node != nil && len(node.children) > 0
}

func (t *Tree) find(p Path) *treeNode {
	if t.root == nil || p == "" {
		return nil
	}
	node := t.root
	for _, seg := range p.Segments() {
		node = node.children[seg]
		if node == nil {
			return nil
		}
	}
	return node
}

// Children returns the sorted direct child segments of a namespace.
// An empty path lists the top level domains.
func (t *Tree) Children(p Path) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.root
	if p != "" {
		node = t.find(p)
	}
	if node == nil {
		return nil
	}

	out := make([]string, 0, len(node.children))
	for seg := range node.children {
		out = append(out, seg)
	}
	sort.Strings(out)
	return out
}

// Match returns the sorted concrete paths matching pattern.
// "*" matches one segment, "**" zero or more.
func (t *Tree) Match(pattern Path) []Path {
	if pattern == "" {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nil {
		return nil
	}

	q := &query{
		pattern: pattern.Segments(),
		seen:    make(map[Path]struct{}),
		visited: make(map[visitKey]struct{}),
	}
	q.walk(t.root, nil, 0)

	sort.Slice(q.matches, func(i, j int) bool { return q.matches[i] < q.matches[j] })
	return q.matches
}

// All returns every inserted path in sorted order.
func (t *Tree) All() []Path {
	return t.Match(WildcardMulti)
}

// Len returns the number of inserted paths.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

type visitKey struct {
	node *treeNode
	qi   int
}

type query struct {
	pattern []string
	seen    map[Path]struct{}
	matches []Path
	visited map[visitKey]struct{}
}

// walk descends the stored tree while consuming pattern segments. prefix is
// the stored path leading to node; qi is the next pattern index.
func (q *query) walk(node *treeNode, prefix []string, qi int) {
	key := visitKey{node: node, qi: qi}
	if _, ok := q.visited[key]; ok {
		return
	}
	q.visited[key] = struct{}{}

	if qi == len(q.pattern) {
		if node.leaf && len(prefix) > 0 {
			q.add(Join(prefix...))
		}
		return
	}

	seg := q.pattern[qi]
	switch seg {
	case WildcardMulti:
		// zero segments consumed
		q.walk(node, prefix, qi+1)
		for name, child := range node.children {
			q.walk(child, appendSegment(prefix, name), qi)
		}
	case WildcardSingle:
		for name, child := range node.children {
			q.walk(child, appendSegment(prefix, name), qi+1)
		}
	default:
		if child := node.children[seg]; child != nil {
			q.walk(child, appendSegment(prefix, seg), qi+1)
		}
	}
}

func (q *query) add(p Path) {
	if _, ok := q.seen[p]; ok {
		return
	}
	q.seen[p] = struct{}{}
	q.matches = append(q.matches, p)
}

func appendSegment(prefix []string, seg string) []string {
	out := make([]string, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = seg
	return out
}
