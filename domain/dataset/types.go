package dataset

import "strconv"

// ValueType defines the storage type for metric values
type ValueType string

const (
	ValueNumeric  ValueType = "numeric"  // continuous draw
	ValueBinary   ValueType = "binary"   // 0/1 proportion outcome
	ValueCategory ValueType = "category" // categorical label
)

// Value is a typed metric observation. Continuous metrics keep the raw
// real-valued draw, proportion metrics store 0 or 1, categorical metrics
// store the label.
type Value struct {
	Type  ValueType `json:"type"`
	Num   float64   `json:"num,omitempty"`
	Label string    `json:"label,omitempty"`
}

// NewNumericValue creates a continuous metric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueNumeric, Num: n}
}

// NewBinaryValue creates a 0/1 proportion outcome
func NewBinaryValue(success bool) Value {
	v := Value{Type: ValueBinary}
	if success {
		v.Num = 1
	}
	return v
}

// NewCategoryValue creates a categorical label value
func NewCategoryValue(label string) Value {
	return Value{Type: ValueCategory, Label: label}
}

// Float64 returns the numeric representation and whether one exists.
// Binary values report 0 or 1 so proportion summaries can average them.
func (v Value) Float64() (float64, bool) {
	switch v.Type {
	case ValueNumeric, ValueBinary:
		return v.Num, true
	}
	return 0, false
}

// String renders the value the way the CSV column expects it: floats without
// forced rounding, binary outcomes as bare integers, labels verbatim.
func (v Value) String() string {
	switch v.Type {
	case ValueNumeric:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueBinary:
		return strconv.Itoa(int(v.Num))
	case ValueCategory:
		return v.Label
	}
	return ""
}

// Row is one generated observation
type Row struct {
	UserID int    `json:"user_id"`
	Group  string `json:"group"`
	Metric Value  `json:"metric"`
}

// Dataset is an ordered sequence of rows, grouped contiguously by group in
// group-index order. user_id runs 1..len(Rows) across the whole dataset.
type Dataset struct {
	Rows []Row `json:"rows"`
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Groups returns the distinct group names in first-appearance order
func (d *Dataset) Groups() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range d.Rows {
		if !seen[r.Group] {
			seen[r.Group] = true
			names = append(names, r.Group)
		}
	}
	return names
}

// GroupRows returns the rows belonging to the named group, preserving order
func (d *Dataset) GroupRows(group string) []Row {
	var rows []Row
	for _, r := range d.Rows {
		if r.Group == group {
			rows = append(rows, r)
		}
	}
	return rows
}
