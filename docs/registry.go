package docs

import (
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/ds"
	"github.com/SaiNageswarS/go-collection-boot/linq"
	"go.uber.org/zap"
)

// Registry holds the documents known to one session plus the subset
// currently active for analysis. The active set is always a subset of the
// registry keys: removal cascades, so no orphan names survive. Methods are
// not safe for concurrent use.
type Registry struct {
	byName map[string]Document
	order  []string
	active *ds.Set[string]
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Document),
		active: ds.NewSet[string](),
	}
}

// Add upserts a document keyed by InternalName. A replaced document keeps
// its position in insertion order.
func (r *Registry) Add(doc Document) {
	if _, exists := r.byName[doc.InternalName]; !exists {
		r.order = append(r.order, doc.InternalName)
	}
	r.byName[doc.InternalName] = doc
}

// Remove deletes a document and cascades the removal to the active set.
// Returns false if the name is unknown.
func (r *Registry) Remove(internalName string) bool {
	if _, exists := r.byName[internalName]; !exists {
		return false
	}

	delete(r.byName, internalName)
	for i, name := range r.order {
		if name == internalName {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.retainActive(func(name string) bool { return name != internalName })
	return true
}

// ReplaceAll resets the registry to the given documents, pruning active
// names that no longer exist.
func (r *Registry) ReplaceAll(documents []Document) {
	r.byName = make(map[string]Document, len(documents))
	r.order = r.order[:0]
	for _, doc := range documents {
		r.Add(doc)
	}
	r.retainActive(func(name string) bool {
		_, exists := r.byName[name]
		return exists
	})
}

// Get returns the document with the given internal name.
func (r *Registry) Get(internalName string) (Document, bool) {
	doc, ok := r.byName[internalName]
	return doc, ok
}

// Documents returns a snapshot in insertion order.
func (r *Registry) Documents() []Document {
	return linq.Map(r.order, func(name string) Document {
		return r.byName[name]
	})
}

func (r *Registry) Len() int {
	return len(r.byName)
}

// ToggleActive flips membership of the name in the active set. Unknown
// names are still inserted, matching the lenient behavior of the document
// pane, but logged.
func (r *Registry) ToggleActive(internalName string) {
	if r.active.Contains(internalName) {
		r.retainActive(func(name string) bool { return name != internalName })
		return
	}
	if _, known := r.byName[internalName]; !known {
		logger.Info("Activating document not present in registry", zap.String("document", internalName))
	}
	r.active.Add(internalName)
}

// SetActive replaces the entire active set. Duplicate names collapse.
func (r *Registry) SetActive(internalNames []string) {
	r.active = ds.NewSet[string]()
	for _, name := range linq.Distinct(internalNames, func(n string) string { return n }) {
		r.active.Add(name)
	}
}

// ClearActive empties the active set.
func (r *Registry) ClearActive() {
	r.active = ds.NewSet[string]()
}

// IsActive reports membership in the active set.
func (r *Registry) IsActive(internalName string) bool {
	return r.active.Contains(internalName)
}

// ActiveNames returns the active set in registry insertion order. Active
// names without a registry entry (lenient toggles) come last.
func (r *Registry) ActiveNames() []string {
	names := make([]string, 0, r.active.Len())
	for _, name := range r.order {
		if r.active.Contains(name) {
			names = append(names, name)
		}
	}
	for _, name := range r.active.ToSlice() {
		if _, known := r.byName[name]; !known {
			names = append(names, name)
		}
	}
	return names
}

// retainActive rebuilds the active set keeping only names confirmed by keep.
func (r *Registry) retainActive(keep func(string) bool) {
	next := ds.NewSet[string]()
	for _, name := range r.active.ToSlice() {
		if keep(name) {
			next.Add(name)
		}
	}
	r.active = next
}
