package http11

import "strings"

// Header is an ordered list of response header fields. Fields are written
// in insertion order; lookup by name is case-insensitive.
type Header struct {
	fields []field
}

type field struct {
	name  string
	value string
}

// Add appends a field. Names or values containing CR or LF are rejected
// to prevent response splitting.
func (h *Header) Add(name, value string) error {
	if strings.ContainsAny(name, "\r\n") || strings.ContainsAny(value, "\r\n") {
		return ErrInvalidHeader
	}
	h.fields = append(h.fields, field{name: name, value: value})
	return nil
}

// Set replaces the first field named name, or appends one.
func (h *Header) Set(name, value string) error {
	for i := range h.fields {
		if strings.EqualFold(h.fields[i].name, name) {
			if strings.ContainsAny(value, "\r\n") {
				return ErrInvalidHeader
			}
			h.fields[i].value = value
			return nil
		}
	}
	return h.Add(name, value)
}

// Get returns the first value for name, or "".
func (h *Header) Get(name string) string {
	for _, f := range h.fields {
		if strings.EqualFold(f.name, name) {
			return f.value
		}
	}
	return ""
}

// Has reports whether a field named name exists.
func (h *Header) Has(name string) bool {
	for _, f := range h.fields {
		if strings.EqualFold(f.name, name) {
			return true
		}
	}
	return false
}

// Len returns the number of fields.
func (h *Header) Len() int {
	return len(h.fields)
}

// VisitAll calls fn for each field in order until fn returns false.
func (h *Header) VisitAll(fn func(name, value string) bool) {
	for _, f := range h.fields {
		if !fn(f.name, f.value) {
			return
		}
	}
}

// Reset removes all fields, keeping capacity.
func (h *Header) Reset() {
	h.fields = h.fields[:0]
}
