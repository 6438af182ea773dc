package ucr

import (
	"maps"
	"slices"
)

// Payload is the create/update/remove delta produced by [Transform].
// All three maps have the same table name keys, even if the table has no rows in a bucket.
type Payload struct {
	Create map[string][]Row `json:"create" yaml:"create"` // rows to insert, without the ID field.
	Update map[string][]Row `json:"update" yaml:"update"` // rows to update, including the ID field.
	Remove map[string][]any `json:"remove" yaml:"remove"` // ids of the rows to remove.
}

// NewPayload creates a Payload with empty buckets for each table name.
func NewPayload(tables ...string) *Payload {
	ret := &Payload{
		Create: make(map[string][]Row, len(tables)),
		Update: make(map[string][]Row, len(tables)),
		Remove: make(map[string][]any, len(tables)),
	}
	for _, table := range tables {
		ret.AddTable(table)
	}
	return ret
}

// AddTable initializes the buckets of a table, keeping any existing rows.
func (p *Payload) AddTable(table string) {
	if _, ok := p.Create[table]; !ok {
		p.Create[table] = []Row{}
	}
	if _, ok := p.Update[table]; !ok {
		p.Update[table] = []Row{}
	}
	if _, ok := p.Remove[table]; !ok {
		p.Remove[table] = []any{}
	}
}

// Tables returns the sorted table names present in the payload.
func (p *Payload) Tables() []string {
	names := map[string]struct{}{}
	for _, bucket := range []map[string][]Row{p.Create, p.Update} {
		for table := range bucket {
			names[table] = struct{}{}
		}
	}
	for table := range p.Remove {
		names[table] = struct{}{}
	}
	return slices.Sorted(maps.Keys(names))
}

// Len returns the total amount of rows and ids in all buckets.
func (p *Payload) Len() int {
	var ret int
	for _, rows := range p.Create {
		ret += len(rows)
	}
	for _, rows := range p.Update {
		ret += len(rows)
	}
	for _, ids := range p.Remove {
		ret += len(ids)
	}
	return ret
}

// IsEmpty returns whether there is nothing to create, update or remove.
func (p *Payload) IsEmpty() bool {
	return p.Len() == 0
}

// Merge appends all rows and ids of other to this payload, table by table.
func (p *Payload) Merge(other *Payload) {
	for _, table := range other.Tables() {
		p.AddTable(table)
		p.Create[table] = append(p.Create[table], other.Create[table]...)
		p.Update[table] = append(p.Update[table], other.Update[table]...)
		p.Remove[table] = append(p.Remove[table], other.Remove[table]...)
	}
}
