package peimport

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Synthetic PE32+ fixture. One section (.idata) mapped at RVA 0x1000 with
// 0x200 bytes of raw data at file offset 0x200; the test controls every byte
// of the section, so import descriptors, thunk tables, and name strings can
// be laid out precisely.
const (
	testImageBase   = 0x140000000
	testSectionRVA  = 0x1000
	testSectionSize = 0x200
	testRawOffset   = 0x200
)

// peLayout describes the data directories of a fixture.
type peLayout struct {
	importRVA       uint32
	importSize      uint32
	delayImportRVA  uint32
	delayImportSize uint32
	section         []byte // testSectionSize bytes, RVA-relative to testSectionRVA
}

// writeTestPE writes a minimal PE32+ image to dir and returns its path.
func writeTestPE(t *testing.T, dir, name string, layout peLayout) string {
	t.Helper()

	buf := make([]byte, testRawOffset+testSectionSize)
	le := binary.LittleEndian

	// DOS header: magic plus e_lfanew.
	buf[0] = 'M'
	buf[1] = 'Z'
	le.PutUint32(buf[0x3C:], 0x40)

	// PE signature.
	copy(buf[0x40:], []byte{'P', 'E', 0, 0})

	// COFF file header.
	coff := buf[0x44:]
	le.PutUint16(coff[0:], 0x8664) // Machine: x86-64
	le.PutUint16(coff[2:], 1)      // NumberOfSections
	le.PutUint16(coff[16:], 240)   // SizeOfOptionalHeader
	le.PutUint16(coff[18:], 0x22)  // Characteristics

	// Optional header (PE32+).
	opt := buf[0x58:]
	le.PutUint16(opt[0:], 0x20B) // Magic
	le.PutUint64(opt[24:], testImageBase)
	le.PutUint32(opt[32:], 0x1000)         // SectionAlignment
	le.PutUint32(opt[36:], testRawOffset)  // FileAlignment
	le.PutUint32(opt[56:], 0x2000)         // SizeOfImage
	le.PutUint32(opt[60:], testRawOffset)  // SizeOfHeaders
	le.PutUint32(opt[108:], 16)            // NumberOfRvaAndSizes
	dd := opt[112:]
	le.PutUint32(dd[1*8:], layout.importRVA)
	le.PutUint32(dd[1*8+4:], layout.importSize)
	le.PutUint32(dd[13*8:], layout.delayImportRVA)
	le.PutUint32(dd[13*8+4:], layout.delayImportSize)

	// Section header.
	sec := buf[0x58+240:]
	copy(sec[0:], ".idata")
	le.PutUint32(sec[8:], testSectionSize)  // VirtualSize
	le.PutUint32(sec[12:], testSectionRVA)  // VirtualAddress
	le.PutUint32(sec[16:], testSectionSize) // SizeOfRawData
	le.PutUint32(sec[20:], testRawOffset)   // PointerToRawData
	le.PutUint32(sec[36:], 0xC0000040)      // Characteristics

	if layout.section != nil {
		copy(buf[testRawOffset:], layout.section)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatalf("writing test PE %s: %v", path, err)
	}
	return path
}

// sectionBuilder fills the fixture section using RVA addressing.
type sectionBuilder struct {
	data []byte
}

func newSectionBuilder() *sectionBuilder {
	return &sectionBuilder{data: make([]byte, testSectionSize)}
}

func (b *sectionBuilder) at(rva uint32) []byte {
	return b.data[rva-testSectionRVA:]
}

func (b *sectionBuilder) putUint32(rva, v uint32) {
	binary.LittleEndian.PutUint32(b.at(rva), v)
}

func (b *sectionBuilder) putUint64(rva uint32, v uint64) {
	binary.LittleEndian.PutUint64(b.at(rva), v)
}

func (b *sectionBuilder) putString(rva uint32, s string) {
	copy(b.at(rva), s)
}

// putImportDescriptor writes a 20-byte import descriptor at rva.
func (b *sectionBuilder) putImportDescriptor(rva, originalFirstThunk, nameRVA, firstThunk uint32) {
	b.putUint32(rva, originalFirstThunk)
	b.putUint32(rva+12, nameRVA)
	b.putUint32(rva+16, firstThunk)
}

// putDelayDescriptor writes a 32-byte delay-load descriptor at rva.
func (b *sectionBuilder) putDelayDescriptor(rva, attrs, nameRVA, iatRVA, nameTableRVA uint32) {
	b.putUint32(rva, attrs)
	b.putUint32(rva+4, nameRVA)
	b.putUint32(rva+12, iatRVA)
	b.putUint32(rva+16, nameTableRVA)
}

// putHintName writes a hint/name entry (2-byte hint then the symbol name).
func (b *sectionBuilder) putHintName(rva uint32, hint uint16, name string) {
	binary.LittleEndian.PutUint16(b.at(rva), hint)
	copy(b.at(rva+2), name)
}
