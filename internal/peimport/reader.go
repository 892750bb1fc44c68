package peimport

import (
	"debug/pe"
	"fmt"
)

// imageReader resolves RVAs against section raw data, caching each section's
// bytes so descriptor, thunk, and string reads hit the file once per section.
type imageReader struct {
	file *pe.File
	data map[*pe.Section][]byte
}

func (r *imageReader) section(rva uint32) (*pe.Section, error) {
	for _, s := range r.file.Sections {
		if s.VirtualAddress <= rva && rva < s.VirtualAddress+s.VirtualSize {
			return s, nil
		}
	}
	return nil, fmt.Errorf("rva 0x%X not covered by any section", rva)
}

// slice returns the section bytes starting at rva, running to the end of the
// section's raw data.
func (r *imageReader) slice(rva uint32) ([]byte, error) {
	s, err := r.section(rva)
	if err != nil {
		return nil, err
	}

	d, ok := r.data[s]
	if !ok {
		d, err = s.Data()
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Name, err)
		}
		r.data[s] = d
	}

	off := rva - s.VirtualAddress
	if uint64(off) >= uint64(len(d)) {
		return nil, fmt.Errorf("rva 0x%X beyond raw data of section %s", rva, s.Name)
	}
	return d[off:], nil
}

// stringAt reads a NUL-terminated string at rva.
func (r *imageReader) stringAt(rva uint32) (string, error) {
	d, err := r.slice(rva)
	if err != nil {
		return "", err
	}
	for i, b := range d {
		if b == 0 {
			return string(d[:i]), nil
		}
	}
	return "", fmt.Errorf("unterminated string at rva 0x%X", rva)
}
