package collection

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"sort"

	"tvibe/internal/fuzzy"
)

const (
	countSize  = 2
	offsetSize = 4
)

// RandSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Collection is a read-only view over an encoded theme container:
//
//	[count u16 BE][count x offset u32 BE][records...]
//
// Offsets are relative to the first record. Only the offset table is parsed
// up front; records stay in the backing slice, which must not be modified
// while the Collection or any LazyTheme from it is in use.
type Collection struct {
	data    []byte
	offsets []uint32
	start   int
}

// New parses the container header and offset table.
func New(b []byte) (*Collection, error) {
	if len(b) < countSize {
		return nil, fmt.Errorf("%w: container of %d bytes has no header", ErrCorruptData, len(b))
	}
	count := int(binary.BigEndian.Uint16(b))
	start := countSize + count*offsetSize
	if len(b) < start {
		return nil, fmt.Errorf("%w: offset table for %d themes needs %d bytes, have %d",
			ErrCorruptData, count, start, len(b))
	}
	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = binary.BigEndian.Uint32(b[countSize+i*offsetSize:])
	}
	return &Collection{data: b, offsets: offsets, start: start}, nil
}

// Pack encodes themes into a container in the given order.
func Pack(themes []*Theme) ([]byte, error) {
	if len(themes) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyThemes, len(themes), math.MaxUint16)
	}

	records := make([][]byte, len(themes))
	size := countSize + len(themes)*offsetSize
	for i, t := range themes {
		rec, err := t.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("theme %d: %w", i, err)
		}
		records[i] = rec
		size += len(rec)
	}
	if uint64(size-countSize-len(themes)*offsetSize) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: record data exceeds 4 GiB", ErrTooManyThemes)
	}

	buf := make([]byte, 0, size)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(themes)))
	var off uint32
	for _, rec := range records {
		buf = binary.BigEndian.AppendUint32(buf, off)
		off += uint32(len(rec))
	}
	for _, rec := range records {
		buf = append(buf, rec...)
	}
	return buf, nil
}

// Len returns the number of themes declared by the header.
func (c *Collection) Len() int {
	return len(c.offsets)
}

func (c *Collection) lazy(i int) (LazyTheme, bool) {
	pos := c.start + int(c.offsets[i])
	if pos < c.start || pos > len(c.data) {
		return LazyTheme{}, false
	}
	rec, err := parseRecord(c.data[pos:])
	if err != nil {
		return LazyTheme{}, false
	}
	return LazyTheme{rec: rec}, true
}

// Get returns the theme at index i. It reports false when i is out of range
// or the record is malformed.
func (c *Collection) Get(i int) (LazyTheme, bool) {
	if i < 0 || i >= len(c.offsets) {
		return LazyTheme{}, false
	}
	return c.lazy(i)
}

// Iterator walks a collection in stored order.
type Iterator struct {
	c    *Collection
	next int
	done bool
}

// Iter returns an iterator positioned at the first theme.
func (c *Collection) Iter() *Iterator {
	return &Iterator{c: c}
}

// Next returns the next theme. Iteration ends at the last theme or at the
// first malformed record.
func (it *Iterator) Next() (LazyTheme, bool) {
	if it.done || it.next >= it.c.Len() {
		it.done = true
		return LazyTheme{}, false
	}
	lt, ok := it.c.lazy(it.next)
	if !ok {
		it.done = true
		return LazyTheme{}, false
	}
	it.next++
	return lt, true
}

// Seq yields the themes passing f in stored order.
func (c *Collection) Seq(f Filter) iter.Seq[LazyTheme] {
	return func(yield func(LazyTheme) bool) {
		it := c.Iter()
		for {
			lt, ok := it.Next()
			if !ok {
				return
			}
			if f.Match(lt.IsLight()) && !yield(lt) {
				return
			}
		}
	}
}

// ByName returns the first theme passing f whose name equals name exactly.
func (c *Collection) ByName(name string, f Filter) (LazyTheme, bool) {
	for lt := range c.Seq(f) {
		if string(lt.rec.name) == name {
			return lt, true
		}
	}
	return LazyTheme{}, false
}

// NameList returns the names of the themes passing f, in stored order or
// sorted lexicographically.
func (c *Collection) NameList(f Filter, sorted bool) []string {
	var names []string
	if f == FilterNone {
		names = make([]string, 0, c.Len())
	}
	for lt := range c.Seq(f) {
		names = append(names, lt.Name())
	}
	if sorted {
		sort.Strings(names)
	}
	return names
}

// Rand picks a uniformly random theme passing f. A nil r uses the
// process-wide source.
func (c *Collection) Rand(r RandSource, f Filter) (LazyTheme, bool) {
	if r == nil {
		r = globalRand{}
	}
	if f == FilterNone {
		if c.Len() == 0 {
			return LazyTheme{}, false
		}
		return c.Get(r.IntN(c.Len()))
	}

	var (
		picked LazyTheme
		seen   int
	)
	for lt := range c.Seq(f) {
		seen++
		if r.IntN(seen) == 0 {
			picked = lt
		}
	}
	return picked, seen > 0
}

// FuzzySearch returns the theme passing f whose name best matches query.
func (c *Collection) FuzzySearch(query string, f Filter) (LazyTheme, bool) {
	name, ok := fuzzy.Best(c.NameList(f, false), query)
	if !ok {
		return LazyTheme{}, false
	}
	return c.ByName(name, f)
}

// LazyTheme exposes a record's name and classification without decoding its
// palette.
type LazyTheme struct {
	rec record
}

// Name returns the theme name.
func (lt LazyTheme) Name() string {
	return string(lt.rec.name)
}

// IsLight reports the classification stored in the record.
func (lt LazyTheme) IsLight() bool {
	return lt.rec.isLight
}

// Theme decodes the full theme.
func (lt LazyTheme) Theme() *Theme {
	return lt.rec.theme(DefaultSteps)
}
