package termgrid

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// termCaps holds the subset of terminfo string capabilities termgrid needs
// to drive output and decode input, indexed by the capIndex constants in
// terminfo_tables.go. A missing capability is the empty string.
type termCaps [numCaps]string

var (
	errShortTerminfo      = errors.New("terminfo: file too short")
	errBadTerminfoMagic   = errors.New("terminfo: unrecognized magic number")
	errMissingTerminfoCap = errors.New("terminfo: required capability missing")
)

// legacyMagic and extendedMagic are the terminfo header magic numbers:
// legacy files store 16-bit numbers, extended ("number") files store
// 32-bit numbers (ncurses' TERMINFO2 format).
const (
	legacyMagic   = 0o0432
	extendedMagic = 0o1036
)

// loadTerminfo resolves capabilities for termName: first by searching the
// compiled terminfo database on disk, falling back to the built-in tables
// in terminfo_tables.go when no terminfo file is found or it fails to
// parse. This mirrors termbox.c's init_term, which always has a fallback
// because not every system ships a terminfo database.
func loadTerminfo(termName string) (termCaps, error) {
	if termName == "" {
		return termCaps{}, newErr(KindNoTerm, nil)
	}
	if path := findTerminfoFile(termName); path != "" {
		if caps, err := parseTerminfoFile(path); err == nil {
			return caps, nil
		}
	}
	if caps, ok := builtinCaps(termName); ok {
		return caps, nil
	}
	return termCaps{}, newErr(KindUnsupportedTerm, nil)
}

// findTerminfoFile searches the conventional terminfo locations in the
// order ncurses uses: $TERMINFO (exact directory), $HOME/.terminfo,
// $TERMINFO_DIRS (colon separated), then the standard system paths. Each
// directory is checked at both <first-letter>/<name> and
// <hex-of-first-letter>/<name>, since different distros use either.
func findTerminfoFile(name string) string {
	first := name[0:1]
	hexFirst := strings.ToLower(hexByte(name[0]))

	var dirs []string
	if v := os.Getenv("TERMINFO"); v != "" {
		dirs = append(dirs, v)
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".terminfo"))
	}
	if v := os.Getenv("TERMINFO_DIRS"); v != "" {
		for _, d := range strings.Split(v, ":") {
			if d == "" {
				d = "/usr/share/terminfo"
			}
			dirs = append(dirs, d)
		}
	}
	dirs = append(dirs, "/usr/share/terminfo", "/usr/share/lib/terminfo", "/lib/terminfo", "/etc/terminfo")

	for _, dir := range dirs {
		for _, sub := range [2]string{first, hexFirst} {
			p := filepath.Join(dir, sub, name)
			if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
				return p
			}
		}
	}
	return ""
}

func hexByte(b byte) string {
	const hexdigits = "0123456789abcdef"
	return string([]byte{hexdigits[b>>4], hexdigits[b&0xf]})
}

// parseTerminfoFile reads and decodes a compiled terminfo entry, extracting
// only the string-capability table (names, booleans, and numbers are
// skipped, mirroring termbox.c's parse_terminfo_caps which only ever reads
// strings).
func parseTerminfoFile(path string) (termCaps, error) {
	var caps termCaps
	data, err := os.ReadFile(path)
	if err != nil {
		return caps, newErr(KindRead, err)
	}
	return parseTerminfoBytes(data)
}

// header fields, little-endian int16 in both formats (the extended format
// widens only the numbers section to int32):
// [0] magic, [1] namesSize, [2] boolCount, [3] numCount,
// [4] strOffsetCount, [5] strTableSize.
func parseTerminfoBytes(data []byte) (termCaps, error) {
	var caps termCaps
	if len(data) < 12 {
		return caps, newErr(KindGeneric, errShortTerminfo)
	}
	magic := int(binary.LittleEndian.Uint16(data[0:2]))
	bytesPerInt := 2
	if magic == extendedMagic {
		bytesPerInt = 4
	} else if magic != legacyMagic {
		return caps, newErr(KindGeneric, errBadTerminfoMagic)
	}

	header := make([]int, 6)
	for i := 0; i < 6; i++ {
		header[i] = int(int16(binary.LittleEndian.Uint16(data[i*2 : i*2+2])))
	}

	namesSize, boolCount, numCount := header[1], header[2], header[3]
	strOffsetCount, strTableSize := header[4], header[5]

	alignOffset := 0
	if (namesSize+boolCount)%2 != 0 {
		alignOffset = 1
	}

	posStrOffsets := 12 + namesSize + boolCount + alignOffset + numCount*bytesPerInt
	posStrTable := posStrOffsets + strOffsetCount*2

	if posStrTable+strTableSize > len(data) {
		return caps, newErr(KindGeneric, errShortTerminfo)
	}

	for _, ci := range terminfoCapIndexes {
		idx := ci.terminfoIndex
		if idx < 0 || idx >= strOffsetCount {
			return termCaps{}, newErr(KindGeneric, errMissingTerminfoCap)
		}
		offPos := posStrOffsets + idx*2
		off := int(int16(binary.LittleEndian.Uint16(data[offPos : offPos+2])))
		if off < 0 || off >= strTableSize {
			return termCaps{}, newErr(KindGeneric, errMissingTerminfoCap)
		}
		end := off
		for end < strTableSize && data[posStrTable+end] != 0 {
			end++
		}
		caps[ci.cap] = string(data[posStrTable+off : posStrTable+end])
	}
	return caps, nil
}
