package domain

// Clone returns a deep copy of the value with no shared pointers.
func (v Value) Clone() Value {
	var out Value
	if v.Bool != nil {
		b := *v.Bool
		out.Bool = &b
	}
	if v.Text != nil {
		s := *v.Text
		out.Text = &s
	}
	if v.Number != nil {
		f := *v.Number
		out.Number = &f
	}
	return out
}

// Clone returns a deep copy of the item, including its options slice.
func (i ChecklistItem) Clone() ChecklistItem {
	out := i
	out.Value = i.Value.Clone()
	if i.Options != nil {
		out.Options = append([]string(nil), i.Options...)
	}
	return out
}

// Clone returns a deep copy of the category and all of its items.
func (c ChecklistCategory) Clone() ChecklistCategory {
	out := c
	out.Items = make([]ChecklistItem, len(c.Items))
	for idx, item := range c.Items {
		out.Items[idx] = item.Clone()
	}
	return out
}

// CloneChecklist deep-copies a whole checklist.
func CloneChecklist(checklist []ChecklistCategory) []ChecklistCategory {
	out := make([]ChecklistCategory, len(checklist))
	for idx, cat := range checklist {
		out[idx] = cat.Clone()
	}
	return out
}

// Clone returns a deep copy of the property. Mutating the copy's checklist,
// tags or items never alters the original.
func (p *Property) Clone() *Property {
	out := *p
	out.Tags = append([]string(nil), p.Tags...)
	out.Checklist = CloneChecklist(p.Checklist)
	return &out
}
