// Package fonttest builds minimal SFNT binaries for tests.
//
// The fonts produced carry a valid table directory, but table contents are
// arbitrary bytes. They are suitable for exercising table directory code
// only.
package fonttest

import (
	"encoding/binary"
	"sort"
)

// Table is a table to include in a synthetic font.
type Table struct {
	Tag  string // padded with spaces to 4 bytes
	Data []byte
}

// Build assembles an SFNT binary with the given version and tables.
// Tables are sorted by tag and aligned to 4 bytes, as required.
func Build(version uint32, tables ...Table) []byte {
	sorted := make([]Table, len(tables))
	copy(sorted, tables)
	sort.Slice(sorted, func(i, j int) bool {
		return tagBytes(sorted[i].Tag) < tagBytes(sorted[j].Tag)
	})
	headerSize := 12 + 16*len(sorted)
	out := make([]byte, headerSize)
	binary.BigEndian.PutUint32(out[0:], version)
	binary.BigEndian.PutUint16(out[4:], uint16(len(sorted)))
	for i, t := range sorted {
		rec := out[12+16*i:]
		copy(rec[0:4], tagBytes(t.Tag))
		binary.BigEndian.PutUint32(rec[4:], checksum(t.Data))
		binary.BigEndian.PutUint32(rec[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(t.Data)))
		out = append(out, t.Data...)
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
	}
	return out
}

// WithTags builds a TrueType-flavoured font with a 4-byte dummy table
// for every tag.
func WithTags(tags ...string) []byte {
	tables := make([]Table, len(tags))
	for i, tag := range tags {
		tables[i] = Table{Tag: tag, Data: []byte{0, 1, 0, 0}}
	}
	return Build(0x00010000, tables...)
}

func tagBytes(tag string) string {
	return (tag + "    ")[:4]
}

func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}
