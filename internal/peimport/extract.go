package peimport

import (
	"debug/pe"
	"encoding/binary"
	"fmt"
)

const (
	importDescriptorSize      = 20
	delayImportDescriptorSize = 32
)

// Extractor reads import tables from PE files on disk.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the import and delay-import directories of the PE file at
// path. A file with no import directory yields an empty ImportSet and no
// error (statically linked or packed binaries). Any read or parse failure is
// returned as an *ExtractionError. The file handle is closed before Extract
// returns.
func (x *Extractor) Extract(path string) (*ImportSet, error) {
	f, err := pe.Open(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Detail: err.Error()}
	}
	defer f.Close()

	imageBase, dirs, is64, err := optionalHeaderInfo(f)
	if err != nil {
		return nil, &ExtractionError{Path: path, Detail: err.Error()}
	}

	r := &imageReader{file: f, data: make(map[*pe.Section][]byte)}
	set := NewImportSet()

	if int(pe.IMAGE_DIRECTORY_ENTRY_IMPORT) < len(dirs) {
		dir := dirs[pe.IMAGE_DIRECTORY_ENTRY_IMPORT]
		if err := parseImports(r, dir, imageBase, is64, set.Direct); err != nil {
			return nil, &ExtractionError{Path: path, Detail: err.Error()}
		}
	}

	if int(pe.IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT) < len(dirs) {
		dir := dirs[pe.IMAGE_DIRECTORY_ENTRY_DELAY_IMPORT]
		if err := parseDelayImports(r, dir, imageBase, is64, set.Delayed); err != nil {
			return nil, &ExtractionError{Path: path, Detail: err.Error()}
		}
	}

	return set, nil
}

// optionalHeaderInfo extracts the image base and data directory slice from
// either flavor of optional header. The data directories tell us where the
// import tables live; ImportedLibraries in debug/pe is a stub.
func optionalHeaderInfo(f *pe.File) (imageBase uint64, dirs []pe.DataDirectory, is64 bool, err error) {
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		return oh.ImageBase, oh.DataDirectory[:oh.NumberOfRvaAndSizes], true, nil
	case *pe.OptionalHeader32:
		return uint64(oh.ImageBase), oh.DataDirectory[:oh.NumberOfRvaAndSizes], false, nil
	default:
		return 0, nil, false, fmt.Errorf("missing or unsupported optional header")
	}
}

// parseImports walks the array of 20-byte import descriptors, terminated by
// an all-zero descriptor.
func parseImports(r *imageReader, dir pe.DataDirectory, imageBase uint64, is64 bool, out importMap) error {
	if dir.VirtualAddress == 0 {
		return nil
	}
	d, err := r.slice(dir.VirtualAddress)
	if err != nil {
		return fmt.Errorf("import directory: %w", err)
	}

	for len(d) >= importDescriptorSize {
		originalFirstThunk := binary.LittleEndian.Uint32(d[0:4])
		nameRVA := binary.LittleEndian.Uint32(d[12:16])
		firstThunk := binary.LittleEndian.Uint32(d[16:20])
		if nameRVA == 0 {
			break
		}

		name, err := r.stringAt(nameRVA)
		if err != nil {
			return fmt.Errorf("import descriptor name: %w", err)
		}

		// Bound imports leave OriginalFirstThunk zero; the IAT still
		// holds the name table in that case.
		nameTable := originalFirstThunk
		if nameTable == 0 {
			nameTable = firstThunk
		}

		syms, err := parseThunks(r, nameTable, firstThunk, imageBase, is64)
		if err != nil {
			return fmt.Errorf("import thunks for %s: %w", name, err)
		}
		out.Set(name, syms)

		d = d[importDescriptorSize:]
	}
	return nil
}

// parseDelayImports walks the array of 32-byte delay-load descriptors.
// Descriptors without the RVA attribute bit store virtual addresses instead
// of RVAs; those are rebased against the image base.
func parseDelayImports(r *imageReader, dir pe.DataDirectory, imageBase uint64, is64 bool, out importMap) error {
	if dir.VirtualAddress == 0 {
		return nil
	}
	d, err := r.slice(dir.VirtualAddress)
	if err != nil {
		return fmt.Errorf("delay-import directory: %w", err)
	}

	for len(d) >= delayImportDescriptorSize {
		attrs := binary.LittleEndian.Uint32(d[0:4])
		nameRVA := binary.LittleEndian.Uint32(d[4:8])
		iatRVA := binary.LittleEndian.Uint32(d[12:16])
		nameTableRVA := binary.LittleEndian.Uint32(d[16:20])
		if nameRVA == 0 {
			break
		}

		norm := func(v uint32) uint32 {
			if v != 0 && attrs&1 == 0 {
				return v - uint32(imageBase)
			}
			return v
		}

		name, err := r.stringAt(norm(nameRVA))
		if err != nil {
			return fmt.Errorf("delay-import descriptor name: %w", err)
		}

		syms, err := parseThunks(r, norm(nameTableRVA), norm(iatRVA), imageBase, is64)
		if err != nil {
			return fmt.Errorf("delay-import thunks for %s: %w", name, err)
		}
		out.Set(name, syms)

		d = d[delayImportDescriptorSize:]
	}
	return nil
}

// parseThunks reads a null-terminated thunk array. Entries with the high bit
// set import by ordinal; the rest point at a hint/name entry. Each symbol's
// Address is the virtual address of its slot in the import address table.
func parseThunks(r *imageReader, nameTableRVA, iatRVA uint32, imageBase uint64, is64 bool) ([]Symbol, error) {
	if nameTableRVA == 0 {
		return nil, nil
	}
	d, err := r.slice(nameTableRVA)
	if err != nil {
		return nil, err
	}

	thunkSize := 4
	if is64 {
		thunkSize = 8
	}

	var syms []Symbol
	for i := 0; (i+1)*thunkSize <= len(d); i++ {
		var val uint64
		if is64 {
			val = binary.LittleEndian.Uint64(d[i*thunkSize:])
		} else {
			val = uint64(binary.LittleEndian.Uint32(d[i*thunkSize:]))
		}
		if val == 0 {
			break
		}

		addr := imageBase + uint64(iatRVA) + uint64(i*thunkSize)

		ordinalBit := uint64(0x80000000)
		if is64 {
			ordinalBit = 0x8000000000000000
		}

		if val&ordinalBit != 0 {
			syms = append(syms, Symbol{
				Ordinal:   uint32(val & 0xFFFF),
				ByOrdinal: true,
				Address:   addr,
			})
			continue
		}

		// Hint/name entry: 2-byte hint followed by the symbol name.
		name, err := r.stringAt(uint32(val&0x7FFFFFFF) + 2)
		if err != nil {
			return nil, err
		}
		syms = append(syms, Symbol{Name: name, Address: addr})
	}
	return syms, nil
}

// importMap is the subset of the ordered map used by the directory parsers.
type importMap interface {
	Set(key string, value []Symbol) bool
}
