package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/namespace"
)

var (
	// ErrDuplicateType is returned when two entries share an event type.
	ErrDuplicateType = errors.New("duplicate event type")

	// ErrDuplicatePath is returned when two entries share a namespace path.
	ErrDuplicatePath = errors.New("duplicate namespace path")

	// ErrUnknownType is returned for event types missing from the catalog.
	ErrUnknownType = errors.New("unknown event type")
)

// Entry describes one operation of the catalog.
type Entry struct {
	// Path is the namespace location, e.g. "Config.State.update".
	Path namespace.Path `json:"path"`

	// Type is the literal event type.
	Type event.Type `json:"type"`

	// Kind tells requests from notifications.
	Kind event.Kind `json:"-"`

	// Fields are the detail keys in declaration order.
	Fields []string `json:"fields"`

	// Result names the Go result type of a request. It is empty for
	// notifications.
	Result string `json:"result,omitempty"`

	detail reflect.Type
	result reflect.Type
	build  func(detail []byte, opts []event.Option) (event.Event, error)
}

// DetailType returns the Go type of the detail.
func (e Entry) DetailType() reflect.Type { return e.detail }

// ResultType returns the Go type of the answer, or nil for notifications.
func (e Entry) ResultType() reflect.Type { return e.result }

// New creates an event of the entry type with a detail decoded from its
// JSON form. Empty or null detail yields the zero detail.
func (e Entry) New(detail []byte, opts ...event.Option) (event.Event, error) {
	if e.build == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, e.Type)
	}
	return e.build(detail, opts)
}

func (e Entry) clone() Entry {
	e.Fields = append([]string(nil), e.Fields...)
	return e
}

func requestEntry[D, R any](path namespace.Path, typ event.Type) Entry {
	return Entry{
		Path:   path,
		Type:   typ,
		Kind:   event.KindRequest,
		Fields: detailFields[D](),
		Result: typeName[R](),
		detail: typeOf[D](),
		result: typeOf[R](),
		build: func(raw []byte, opts []event.Option) (event.Event, error) {
			d, err := decodeDetail[D](typ, raw)
			if err != nil {
				return nil, err
			}
			return event.NewRequest[D, R](typ, d, opts...), nil
		},
	}
}

func notificationEntry[D any](path namespace.Path, typ event.Type) Entry {
	return Entry{
		Path:   path,
		Type:   typ,
		Kind:   event.KindNotification,
		Fields: detailFields[D](),
		detail: typeOf[D](),
		build: func(raw []byte, opts []event.Option) (event.Event, error) {
			d, err := decodeDetail[D](typ, raw)
			if err != nil {
				return nil, err
			}
			return event.NewNotification(typ, d, opts...), nil
		},
	}
}

func decodeDetail[D any](typ event.Type, raw []byte) (D, error) {
	var d D
	if len(raw) == 0 || gjson.ParseBytes(raw).Type == gjson.Null {
		return d, nil
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("decode %s detail: %w", typ, err)
	}
	return d, nil
}

// detailFields lists the top level keys of the zero detail.
func detailFields[D any]() []string {
	var zero D
	data, err := json.Marshal(zero)
	if err != nil {
		return nil
	}
	var keys []string
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

const pkgPath = "github.com/dshills/arcevents/internal/event/"

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName[T any]() string {
	name := typeOf[T]().String()
	name = strings.ReplaceAll(name, pkgPath+"events.", "")
	name = strings.ReplaceAll(name, "events.", "")
	name = strings.ReplaceAll(name, "event.", "")
	return strings.ReplaceAll(name, "interface {}", "any")
}

// Catalog is the read-only index of every operation. Lookups never modify
// it and returned slices are copies, so a Catalog is safe for concurrent
// use.
type Catalog struct {
	entries []Entry
	byPath  map[namespace.Path]int
	byType  map[event.Type]int
	tree    *namespace.Tree
}

// NewCatalog indexes entries. Two entries with the same type or the same
// path are an error.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byPath:  make(map[namespace.Path]int, len(entries)),
		byType:  make(map[event.Type]int, len(entries)),
		tree:    namespace.NewTree(),
	}

	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, e := range sorted {
		if prev, ok := c.byType[e.Type]; ok {
			return nil, fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateType, e.Type, c.entries[prev].Path, e.Path)
		}
		if err := c.tree.Insert(e.Path); err != nil {
			if errors.Is(err, namespace.ErrPathExists) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, e.Path)
			}
			return nil, err
		}
		c.byPath[e.Path] = len(c.entries)
		c.byType[e.Type] = len(c.entries)
		c.entries = append(c.entries, e.clone())
	}
	c.tree.Freeze()
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog of every operation defined in this package.
// It panics if two operations share a type or a path.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(allEntries()...)
		if err != nil {
			panic(fmt.Sprintf("events: invalid catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func allEntries() []Entry {
	domains := []func() []Entry{
		appEntries,
		configEntries,
		authEntries,
		authDataEntries,
		clientCertificateEntries,
		cookieEntries,
		dataExportEntries,
		dataImportEntries,
		encryptionEntries,
		environmentEntries,
		variableEntries,
		googleDriveEntries,
		hostRulesEntries,
		navigationEntries,
		processEntries,
		modelEntries,
		projectEntries,
		requestEntries,
		restAPIEntries,
		urlHistoryEntries,
		wsURLHistoryEntries,
		urlIndexerEntries,
		reportingEntries,
		telemetryEntries,
		themeEntries,
		transportEntries,
		webSocketEntries,
		workspaceEntries,
		searchEntries,
		menuEntries,
		updaterEntries,
		sessionEntries,
		requestActionsEntries,
		dialogEntries,
		clipboardEntries,
		toastEntries,
		windowEntries,
	}

	var out []Entry
	for _, fn := range domains {
		out = append(out, fn()...)
	}
	return out
}

// Lookup returns the event type at path.
func (c *Catalog) Lookup(path namespace.Path) (event.Type, bool) {
	i, ok := c.byPath[path]
	if !ok {
		return "", false
	}
	return c.entries[i].Type, true
}

// Entry returns the entry at path.
func (c *Catalog) Entry(path namespace.Path) (Entry, bool) {
	i, ok := c.byPath[path]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// ByType returns the entry of an event type.
func (c *Catalog) ByType(t event.Type) (Entry, bool) {
	i, ok := c.byType[t]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// New creates an event of type t with a JSON detail.
func (c *Catalog) New(t event.Type, detail []byte, opts ...event.Option) (event.Event, error) {
	i, ok := c.byType[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return c.entries[i].New(detail, opts...)
}

// Entries returns every entry sorted by path.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

// Types returns every event type sorted by path.
func (c *Catalog) Types() []event.Type {
	out := make([]event.Type, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Type
	}
	return out
}

// Domains returns the sorted top level namespaces.
func (c *Catalog) Domains() []string {
	return c.tree.Children("")
}

// Namespaces returns every inner namespace sorted, e.g. "Config",
// "Config.State", "Model", "Model.Project".
func (c *Catalog) Namespaces() []namespace.Path {
	var out []namespace.Path
	var walk func(p namespace.Path)
	walk = func(p namespace.Path) {
		for _, seg := range c.tree.Children(p) {
			child := p.Child(seg)
			if c.tree.IsNamespace(child) {
				out = append(out, child)
				walk(child)
			}
		}
	}
	walk("")
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Match returns the entries whose path matches pattern, sorted by path.
// "*" matches one segment and "**" any number of them.
func (c *Catalog) Match(pattern namespace.Path) []Entry {
	paths := c.tree.Match(pattern)
	out := make([]Entry, 0, len(paths))
	for _, p := range paths {
		out = append(out, c.entries[c.byPath[p]].clone())
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
