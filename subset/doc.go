/*
Package subset holds the input to font subsetting: a description of which
parts of a font a subsetting run should retain, drop or transform.

An Input is a policy descriptor. It stores code-points, glyph IDs, name-table
records, layout features and table tags to keep or to drop, together with a
couple of behavioural flags. It does not parse fonts and does not decide
which glyphs survive subsetting. This is left to a subsetting engine, which
reads the Input without modifying it during a run.

A fresh Input comes with defaults matching established font tooling
(fontTools and HarfBuzz): the mandatory name records 0…6 in US English are
kept, layout features for all common shapers are kept, and a set of legacy,
bitmap and Graphite tables is dropped.

	in, err := subset.CreateOrFail()
	if err != nil {
	    …
	}
	defer in.Destroy()
	in.AddText("Hello")
	in.SetFlag(subset.RetainGIDs, true)

Inputs are reference counted, mirroring the object model of HarfBuzz,
so that several collaborators may hold an input concurrently. Calls to
Reference and Destroy may happen from different goroutines; mutation of an
Input's sets is not synchronized and has to be serialized by clients.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package subset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otsubset.subset'
func tracer() tracing.Trace {
	return tracing.Select("otsubset.subset")
}
