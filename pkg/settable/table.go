package settable

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation"
	"k8s.io/klog/v2"
)

// Table holds named interval sets. The table itself is safe for
// concurrent use; the sets it hands out are not, each set belongs to
// whoever currently drives it.
type Table interface {
	Create(name string, l labels.Set) (Entry, error)
	Get(name string) (Entry, error)
	GetOrCreate(name string, l labels.Set) (Entry, error)
	Update(name string, l labels.Set) error
	Delete(name string) error
	Clear()

	Count() int
	Has(name string) bool
	Names() []string

	GetAll() map[string]Entry
	GetByLabel(selector labels.Selector) Entries
}

func New(initEntries map[string]labels.Set) (Table, error) {
	r := &table{
		m:     new(sync.RWMutex),
		table: map[string]*entry{},
	}

	var errm error
	for name, l := range initEntries {
		if _, err := r.create(name, l); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

type table struct {
	m     *sync.RWMutex
	table map[string]*entry
}

func validate(name string, l labels.Set) error {
	if errs := validation.IsQualifiedName(name); len(errs) != 0 {
		return fmt.Errorf("invalid set name %q: %s", name, strings.Join(errs, "; "))
	}
	if _, err := labels.ValidatedSelectorFromSet(l); err != nil {
		return fmt.Errorf("invalid labels for set %q: %w", name, err)
	}
	return nil
}

func (r *table) Create(name string, l labels.Set) (Entry, error) {
	r.m.Lock()
	defer r.m.Unlock()

	e, err := r.create(name, l)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *table) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.table[name]
	if !ok {
		return nil, fmt.Errorf("no match found for: %q", name)
	}
	return e, nil
}

// GetOrCreate returns the named set, creating it with labels l when it
// does not exist yet. The labels of an existing set are left as is.
func (r *table) GetOrCreate(name string, l labels.Set) (Entry, error) {
	r.m.Lock()
	defer r.m.Unlock()

	if e, ok := r.table[name]; ok {
		return e, nil
	}
	e, err := r.create(name, l)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *table) Update(name string, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.table[name]
	if !ok {
		return fmt.Errorf("set %q not found", name)
	}
	if err := validate(name, l); err != nil {
		return err
	}
	e.labels = copyLabels(l)
	return nil
}

func (r *table) Delete(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.table[name]
	if !ok {
		return fmt.Errorf("set %q not found", name)
	}
	e.set.Clear()
	delete(r.table, name)
	klog.V(2).InfoS("deleted interval set", "name", name)
	return nil
}

// Clear empties every set and drops them from the table.
func (r *table) Clear() {
	r.m.Lock()
	defer r.m.Unlock()

	for name, e := range r.table {
		e.set.Clear()
		delete(r.table, name)
	}
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[name]
	return ok
}

func (r *table) Names() []string {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.names()
}

func (r *table) names() []string {
	keys := make([]string, 0, len(r.table))
	for key := range r.table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (r *table) GetAll() map[string]Entry {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[string]Entry, len(r.table))
	for name, e := range r.table {
		entries[name] = e
	}
	return entries
}

// GetByLabel returns the sets whose labels match selector, ordered by
// name.
func (r *table) GetByLabel(selector labels.Selector) Entries {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(Entries, 0, len(r.table))
	for _, name := range r.names() {
		e := r.table[name]
		if selector.Matches(e.labels) {
			entries = append(entries, e)
		}
	}
	return entries
}

func (r *table) create(name string, l labels.Set) (*entry, error) {
	if err := validate(name, l); err != nil {
		return nil, err
	}
	if _, ok := r.table[name]; ok {
		return nil, fmt.Errorf("set %q already exists", name)
	}
	e := newEntry(name, l)
	r.table[name] = e
	klog.V(2).InfoS("created interval set", "name", name, "labels", e.labels.String())
	return e, nil
}
