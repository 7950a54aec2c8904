/*
Package ot provides the low-level OpenType vocabulary needed for subsetting:
4-byte tags and the table directory of an SFNT font file.

Package `ot` will not interpret any table of a font. A subsetting engine
needs to know which tables a font carries, where they live and how large
they are, in order to decide, guided by a subset input, whether to drop a
table, copy it verbatim or rewrite it. Interpreting the contents of
the tables is the job of the engine.

Fonts in the wild often infringe upon the OpenType specification. The
directory reader is strict about things it cannot recover from (bounds,
alignment, ordering of table records), and reports them as FontErrors.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
