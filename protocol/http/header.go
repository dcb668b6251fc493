package http

import "strings"

// Header is a single header line. Name keeps the casing it was inserted with.
type Header struct {
	Name  string
	Value string
}

type headerEntry struct {
	key string
	Header
}

// Headers is an ordered multi-map of header lines.
//
// Names match ASCII case-insensitively, values match exactly. Lookups and
// removals that find nothing are no-ops, never errors. Headers has no locking
// of its own; callers sharing one across goroutines must synchronize.
type Headers struct {
	entries []headerEntry
}

func NewHeaders(headers ...Header) *Headers {
	h := &Headers{
		entries: make([]headerEntry, 0, len(headers)),
	}
	for _, header := range headers {
		h.Add(header.Name, header.Value)
	}
	return h
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Add appends a pair without touching existing ones.
func (h *Headers) Add(name, value string) {
	h.entries = append(h.entries, headerEntry{headerKey(name), Header{name, value}})
}

// Set replaces every pair named name with the single pair (name, value).
// The new pair takes the position of the first replaced one, or is appended
// when there was none.
func (h *Headers) Set(name, value string) {
	key := headerKey(name)
	entry := headerEntry{key, Header{name, value}}
	first := h.index(key, 0)
	if first < 0 {
		h.entries = append(h.entries, entry)
		return
	}
	h.entries[first] = entry
	h.removeMatching(key, first+1)
}

func (h *Headers) Has(name string) bool {
	if h == nil {
		return false
	}
	return h.index(headerKey(name), 0) >= 0
}

// Get returns the first value for name, or "".
func (h *Headers) Get(name string) string {
	return h.GetDefault(name, "")
}

func (h *Headers) GetDefault(name, defaultValue string) string {
	if h == nil {
		return defaultValue
	}
	if i := h.index(headerKey(name), 0); i >= 0 {
		return h.entries[i].Value
	}
	return defaultValue
}

// Values returns every value for name in insertion order. The result is
// never nil.
func (h *Headers) Values(name string) []string {
	values := []string{}
	if h == nil {
		return values
	}
	key := headerKey(name)
	for _, entry := range h.entries {
		if entry.key == key {
			values = append(values, entry.Value)
		}
	}
	return values
}

// Remove drops every pair named name.
func (h *Headers) Remove(name string) {
	if h == nil {
		return
	}
	h.removeMatching(headerKey(name), 0)
}

// RemoveValue drops the first pair named name whose value equals value.
func (h *Headers) RemoveValue(name, value string) {
	if h == nil {
		return
	}
	key := headerKey(name)
	for i, entry := range h.entries {
		if entry.key == key && entry.Value == value {
			copy(h.entries[i:], h.entries[i+1:])
			h.entries[len(h.entries)-1] = headerEntry{}
			h.entries = h.entries[:len(h.entries)-1]
			return
		}
	}
}

func (h *Headers) Clear() {
	if h == nil {
		return
	}
	for i := range h.entries {
		h.entries[i] = headerEntry{}
	}
	h.entries = h.entries[:0]
}

// Flatten returns every stored pair in storage order. The slice is freshly
// allocated on each call and is what a transport writes, as is.
func (h *Headers) Flatten() []Header {
	if h == nil {
		return []Header{}
	}
	headers := make([]Header, len(h.entries))
	for i, entry := range h.entries {
		headers[i] = entry.Header
	}
	return headers
}

// Iterator returns a cursor over a snapshot of the current pairs. Later
// mutations of h are not visible to it; call Iterator again to restart.
func (h *Headers) Iterator() *HeaderIterator {
	return &HeaderIterator{headers: h.Flatten(), index: -1}
}

// Range calls yield for each pair of a snapshot until yield returns false.
func (h *Headers) Range(yield func(header Header) bool) {
	for _, header := range h.Flatten() {
		if !yield(header) {
			return
		}
	}
}

func (h *Headers) Clone() *Headers {
	if h == nil {
		return NewHeaders()
	}
	entries := make([]headerEntry, len(h.entries))
	copy(entries, h.entries)
	return &Headers{entries: entries}
}

func (h *Headers) String() string {
	var builder strings.Builder
	for i, header := range h.Flatten() {
		if i > 0 {
			builder.WriteString("\r\n")
		}
		builder.WriteString(header.Name)
		builder.WriteString(": ")
		builder.WriteString(header.Value)
	}
	return builder.String()
}

func (h *Headers) index(key string, from int) int {
	for i := from; i < len(h.entries); i++ {
		if h.entries[i].key == key {
			return i
		}
	}
	return -1
}

// removeMatching compacts h.entries[from:] in place, keeping order.
func (h *Headers) removeMatching(key string, from int) {
	kept := from
	for i := from; i < len(h.entries); i++ {
		if h.entries[i].key == key {
			continue
		}
		h.entries[kept] = h.entries[i]
		kept++
	}
	for i := kept; i < len(h.entries); i++ {
		h.entries[i] = headerEntry{}
	}
	h.entries = h.entries[:kept]
}

type HeaderIterator struct {
	headers []Header
	index   int
}

func (it *HeaderIterator) Next() bool {
	if it.index+1 >= len(it.headers) {
		it.index = len(it.headers)
		return false
	}
	it.index++
	return true
}

// Header returns the pair under the cursor. It must only be called after
// Next returned true.
func (it *HeaderIterator) Header() Header {
	return it.headers[it.index]
}

// headerKey lower-cases ASCII letters only, so non-ASCII names never fold
// together.
func headerKey(name string) string {
	for i := 0; i < len(name); i++ {
		if c := name[i]; 'A' <= c && c <= 'Z' {
			return lowerASCII(name, i)
		}
	}
	return name
}

func lowerASCII(name string, from int) string {
	key := []byte(name)
	for i := from; i < len(key); i++ {
		if c := key[i]; 'A' <= c && c <= 'Z' {
			key[i] = c + 'a' - 'A'
		}
	}
	return string(key)
}
