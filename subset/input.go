package subset

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/otsubset/intset"
)

// ErrAllocation is returned by CreateOrFail if the storage for an input
// cannot be set up.
var ErrAllocation = errors.New("subset input: allocation failed")

// Input describes what a subsetting run should keep, drop or transform.
//
// Inputs are reference counted. CreateOrFail returns an input with a count
// of 1, Reference increments the count and Destroy decrements it. The holder
// of the last reference tears the input down. Sets handed out by the set
// accessors are borrowed: they are valid only as long as the input is alive.
type Input struct {
	refs atomic.Int32

	unicodes       *intset.Set
	glyphs         *intset.Set
	nameIDs        *intset.Set
	nameLanguages  *intset.Set
	layoutFeatures *intset.Set
	dropTables     *intset.Set
	noSubsetTables *intset.Set

	dropHints               bool
	desubroutinize          bool
	retainGIDs              bool
	nameLegacy              bool
	overlapsFlag            bool
	notdefOutline           bool
	noPruneUnicodeRanges    bool
	retainAllFeatures       bool
	passthroughUnrecognized bool

	udMutex  sync.Mutex
	userData map[*UserDataKey]userDataItem
}

// SetAllocator creates the sets an input owns.
type SetAllocator func() (*intset.Set, error)

// Option configures the creation of an input.
type Option func(*options)

type options struct {
	alloc SetAllocator
}

// WithSetAllocator replaces the allocator for the sets of an input.
// Creation fails if the allocator returns an error.
func WithSetAllocator(alloc SetAllocator) Option {
	return func(o *options) {
		if alloc != nil {
			o.alloc = alloc
		}
	}
}

func defaultAllocator() (*intset.Set, error) {
	return intset.New(), nil
}

// CreateOrFail creates a subset input, populated with defaults.
//
// All sets are allocated up front. If any allocation fails, the sets allocated
// so far are destroyed and an error wrapping ErrAllocation is returned; no
// partially initialized input is ever handed out.
//
// Flags all start out false, i.e. hinting is retained. The name IDs 0…6 in
// language 0x0409 are kept, and tables and layout features are set up from
// built-in default lists (see DefaultDropTables, DefaultNoSubsetTables and
// DefaultLayoutFeatures).
func CreateOrFail(opts ...Option) (*Input, error) {
	o := options{alloc: defaultAllocator}
	for _, opt := range opts {
		opt(&o)
	}
	in := &Input{}
	slots := []**intset.Set{
		&in.unicodes, &in.glyphs, &in.nameIDs, &in.nameLanguages,
		&in.layoutFeatures, &in.dropTables, &in.noSubsetTables,
	}
	for i, slot := range slots {
		s, err := o.alloc()
		if err == nil && s == nil {
			err = errors.New("allocator returned no set")
		}
		if err != nil {
			tracer().Errorf("cannot allocate set #%d of subset input: %v", i, err)
			for _, done := range slots[:i] {
				(*done).Destroy()
				*done = nil
			}
			return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
		}
		*slot = s
	}
	in.nameIDs.AddRange(defaultNameIDFirst, defaultNameIDLast)
	in.nameLanguages.Add(LangIDEnglishUS)
	in.dropTables.AddSlice(tagValues(defaultDropTables))
	in.noSubsetTables.AddSlice(tagValues(defaultNoSubsetTables))
	in.layoutFeatures.AddSlice(tagValues(defaultLayoutFeatures))
	in.refs.Store(1)
	tracer().Debugf("created subset input")
	return in, nil
}

// New is a variant of CreateOrFail which returns nil on failure.
func New(opts ...Option) *Input {
	in, err := CreateOrFail(opts...)
	if err != nil {
		return nil
	}
	return in
}

// Reference takes an additional reference to in and returns it.
// Reference(nil) returns nil.
func Reference(in *Input) *Input {
	if in == nil {
		return nil
	}
	if in.refs.Add(1) <= 1 {
		tracer().Errorf("subset input referenced after it has been destroyed")
	}
	return in
}

// Reference takes an additional reference to in and returns it.
func (in *Input) Reference() *Input {
	return Reference(in)
}

// Destroy releases a reference to in. Releasing the last reference destroys
// the user data attached to in, as well as all sets owned by in.
// Calling Destroy on a nil input is a no-op.
func (in *Input) Destroy() {
	if in == nil {
		return
	}
	for {
		n := in.refs.Load()
		if n <= 0 {
			tracer().Errorf("subset input destroyed more often than referenced")
			return
		}
		if !in.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n > 1 {
			return
		}
		break
	}
	in.clearUserData()
	for _, s := range []**intset.Set{
		&in.unicodes, &in.glyphs, &in.nameIDs, &in.nameLanguages,
		&in.layoutFeatures, &in.dropTables, &in.noSubsetTables,
	} {
		(*s).Destroy()
		*s = nil
	}
	tracer().Debugf("destroyed subset input")
}

// IsAlive returns true as long as at least one reference to in is held.
func (in *Input) IsAlive() bool {
	return in != nil && in.refs.Load() > 0
}

// --- Sets ------------------------------------------------------------------

// UnicodeSet returns the set of code-points to retain.
func (in *Input) UnicodeSet() *intset.Set {
	return in.unicodes
}

// GlyphSet returns the set of glyph IDs to retain, in addition to the glyphs
// reachable from the code-points in UnicodeSet.
func (in *Input) GlyphSet() *intset.Set {
	return in.glyphs
}

// NameIDSet returns the set of name-table record IDs to retain.
func (in *Input) NameIDSet() *intset.Set {
	return in.nameIDs
}

// NameLangIDSet returns the set of name-table language IDs to retain.
func (in *Input) NameLangIDSet() *intset.Set {
	return in.nameLanguages
}

// LayoutFeaturesSet returns the set of OpenType layout feature tags to retain.
func (in *Input) LayoutFeaturesSet() *intset.Set {
	return in.layoutFeatures
}

// DropTablesSet returns the set of tags of tables to omit from the output.
func (in *Input) DropTablesSet() *intset.Set {
	return in.dropTables
}

// NoSubsetTablesSet returns the set of tags of tables to copy to the output
// without subsetting them.
func (in *Input) NoSubsetTablesSet() *intset.Set {
	return in.noSubsetTables
}

// --- Retaining all features ------------------------------------------------

// SetRetainAllFeatures tells a subsetter to keep every layout feature,
// ignoring LayoutFeaturesSet.
func (in *Input) SetRetainAllFeatures(value bool) {
	in.retainAllFeatures = value
}

// GetRetainAllFeatures returns true if all layout features are to be kept.
func (in *Input) GetRetainAllFeatures() bool {
	return in.retainAllFeatures
}
