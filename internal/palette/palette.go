package palette

import "slices"

// ColorOption is one entry of the preset color table.
type ColorOption struct {
	ID    int
	Label string
	Value string // hex, e.g. "#ef4444"
}

// Size is the number of preset colors.
const Size = 8

var presets = [Size]ColorOption{
	{ID: 1, Value: "#ef4444"},
	{ID: 2, Value: "#3b82f6"},
	{ID: 3, Value: "#22c55e"},
	{ID: 4, Value: "#eab308"},
	{ID: 5, Value: "#a855f7"},
	{ID: 6, Value: "#f97316"},
	{ID: 7, Value: "#ec4899"},
	{ID: 8, Value: "#06b6d4"},
}

// Table is the immutable preset table, optionally with display labels
// overridden. The ids and color values never change.
type Table struct {
	options []ColorOption
}

// Default returns the preset table with the built-in (empty) labels.
func Default() *Table {
	return NewTable(nil)
}

// NewTable returns the preset table with labels replaced for the ids present
// in labels. Unknown ids in labels are ignored.
func NewTable(labels map[int]string) *Table {
	options := make([]ColorOption, len(presets))
	copy(options, presets[:])
	for i := range options {
		if label, ok := labels[options[i].ID]; ok {
			options[i].Label = label
		}
	}
	return &Table{options: options}
}

// Options returns all entries in table order.
func (t *Table) Options() []ColorOption {
	return slices.Clone(t.options)
}

// Lookup returns the entry with the given id.
func (t *Table) Lookup(id int) (ColorOption, bool) {
	for _, o := range t.options {
		if o.ID == id {
			return o, true
		}
	}
	return ColorOption{}, false
}

// Project maps ids onto table entries, preserving the order of ids.
// Unknown ids are skipped.
func (t *Table) Project(ids []int) []ColorOption {
	out := make([]ColorOption, 0, len(ids))
	for _, id := range ids {
		if o, ok := t.Lookup(id); ok {
			out = append(out, o)
		}
	}
	return out
}

// Known reports whether id belongs to the preset table.
func Known(id int) bool {
	return id >= 1 && id <= Size
}
