package vfs

import (
	"os"
	"strings"
)

// Mode is the access intent used when opening a file. It is the single source
// of truth for whether a File may be read or written.
type Mode string

const (
	// ModeRead opens an existing file for reading.
	ModeRead Mode = "r"
	// ModeWrite opens a file for writing, creating or truncating it.
	ModeWrite Mode = "w"
	// ModeReadWrite opens an existing file for reading and writing.
	ModeReadWrite Mode = "r+"
	// ModeReadWriteCreate opens a file for reading and writing, creating or
	// truncating it.
	ModeReadWriteCreate Mode = "w+"
	// ModeAppend opens an existing file for reading and appending.
	ModeAppend Mode = "a"
	// ModeAppendCreate opens a file for reading and appending, creating it if
	// it does not exist.
	ModeAppendCreate Mode = "a+"
)

type modeInfo struct {
	readable bool
	writable bool
	flag     int
}

var modes = map[Mode]modeInfo{
	ModeRead:            {readable: true, writable: false, flag: os.O_RDONLY},
	ModeWrite:           {readable: false, writable: true, flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
	ModeReadWrite:       {readable: true, writable: true, flag: os.O_RDWR},
	ModeReadWriteCreate: {readable: true, writable: true, flag: os.O_RDWR | os.O_CREATE | os.O_TRUNC},
	ModeAppend:          {readable: true, writable: true, flag: os.O_RDWR | os.O_APPEND},
	ModeAppendCreate:    {readable: true, writable: true, flag: os.O_RDWR | os.O_APPEND | os.O_CREATE},
}

// Modes returns every valid Mode.
func Modes() []Mode {
	return []Mode{
		ModeRead,
		ModeWrite,
		ModeReadWrite,
		ModeReadWriteCreate,
		ModeAppend,
		ModeAppendCreate,
	}
}

// ParseMode converts a mode token ("r", "w", "r+", "w+", "a", "a+") into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.TrimSpace(s))
	if !m.Valid() {
		return "", invalidModeError(s)
	}
	return m, nil
}

// Valid reports whether m is one of the six defined modes.
func (m Mode) Valid() bool {
	_, ok := modes[m]
	return ok
}

// Readable reports whether a file opened with m may be read.
func (m Mode) Readable() bool {
	return modes[m].readable
}

// Writable reports whether a file opened with m may be written or removed.
func (m Mode) Writable() bool {
	return modes[m].writable
}

// Flag returns the os.OpenFile flags equivalent to m.
// Returns -1 for an invalid mode.
func (m Mode) Flag() int {
	info, ok := modes[m]
	if !ok {
		return -1
	}
	return info.flag
}

// Truncates reports whether opening with m discards existing content.
func (m Mode) Truncates() bool {
	return m.Flag()&os.O_TRUNC != 0 && m.Valid()
}

// Creates reports whether opening with m creates a missing file.
func (m Mode) Creates() bool {
	return m.Flag()&os.O_CREATE != 0 && m.Valid()
}

// Appends reports whether writes through m always go to the end of the file.
func (m Mode) Appends() bool {
	return m.Flag()&os.O_APPEND != 0 && m.Valid()
}

// String returns the mode token.
func (m Mode) String() string {
	return string(m)
}
