package settable

import (
	"fmt"

	"github.com/henderiw/intervals/pkg/intervalset"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	Name() string
	Labels() labels.Set
	Set() *intervalset.Set
	String() string
}

type entry struct {
	name   string
	labels labels.Set
	set    *intervalset.Set
}

type Entries []Entry

func (r *entry) Name() string          { return r.name }
func (r *entry) Labels() labels.Set    { return r.labels }
func (r *entry) Set() *intervalset.Set { return r.set }
func (r *entry) String() string {
	return fmt.Sprintf("name: %s, labels: %s, set: %s", r.name, r.labels.String(), r.set.String())
}

func newEntry(name string, l labels.Set) *entry {
	return &entry{
		name:   name,
		labels: copyLabels(l),
		set:    intervalset.New(),
	}
}

func copyLabels(l labels.Set) labels.Set {
	c := make(labels.Set, len(l))
	for k, v := range l {
		c[k] = v
	}
	return c
}
