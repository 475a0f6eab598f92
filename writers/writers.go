package writers

// Functions for writing to a file

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"coldump/schema"
	"coldump/types"
)

func Write_uint8(out io.Writer, i uint32) (int, error) {
	return out.Write([]byte{uint8(i)})
}

func Write_uint16_le(out io.Writer, i uint32) (int, error) {
	return out.Write([]byte{uint8(i & 0xff), uint8((i >> 8) & 0xff)})
}

func Write_uint32_le(out io.Writer, i uint32) (int, error) {
	return out.Write([]byte{uint8(i & 0xff), uint8((i >> 8) & 0xff), uint8((i >> 16) & 0xff), uint8(i >> 24)})
}

var write_le = map[int]func(io.Writer, uint32) (int, error){
	1: Write_uint8,
	2: Write_uint16_le,
	4: Write_uint32_le,
}

// stream encodes a savegame as a schema.Coder.  The first error sticks and stops all output.
type stream struct {
	w       *bufio.Writer
	section string
	index   int
	err     error
}

func (s *stream) put(n int, err error) {
	if err != nil && s.err == nil {
		s.err = &types.IoError{Op: "write", Err: err}
	}
}

func (s *stream) uint_le(size int, v uint32) {
	if s.err != nil {
		return
	}
	s.put(write_le[size](s.w, v))
}

func (s *stream) U8(v *uint8) { s.uint_le(1, uint32(*v)) }
func (s *stream) I8(v *int8) { s.uint_le(1, uint32(uint8(*v))) }
func (s *stream) U16(v *uint16) { s.uint_le(2, uint32(*v)) }
func (s *stream) I16(v *int16) { s.uint_le(2, uint32(uint16(*v))) }
func (s *stream) U32(v *uint32) { s.uint_le(4, *v) }
func (s *stream) I32(v *int32) { s.uint_le(4, uint32(*v)) }

func (s *stream) Bytes(b []byte) {
	if s.err != nil {
		return
	}
	s.put(s.w.Write(b))
}

func (s *stream) Bits(g *schema.Group, vals ...*uint8) {
	unit := uint32(0)
	for i, f := range g.Fields {
		v := uint32(*vals[i])
		if !f.Fits(v) {
			if s.err == nil {
				s.err = &types.FormatError{
					Section: s.section, Index: s.index, Field: g.Name + "." + f.Name,
					Kind: types.FK_OUT_OF_RANGE, Value: v, Limit: schema.Mask(f.Width),
				}
			}
			return
		}
		unit = schema.Pack(unit, f, v)
	}
	s.uint_le(g.Unit, unit)
}

func (s *stream) Rest(b *[]byte) { s.Bytes(*b) }

func (s *stream) Enter(section string, index int) {
	s.section, s.index = section, index
}

func (s *stream) Decoding() bool { return false }

// check refuses savegames that can't be written back faithfully.  Header counters are written as
// they are; the sections go out at their actual lengths.
func check(sd *types.Savegame) error {
	if !sd.Signature_valid() {
		return &types.FormatError{Section: "header", Index: -1, Field: "signature", Kind: types.FK_BAD_SIGNATURE}
	}
	return nil
}

// Write_savegame encodes sd.  Nothing is written if sd can't be encoded exactly.
func Write_savegame(out io.Writer, sd *types.Savegame) error {
	err := check(sd)
	if err != nil {
		return err
	}

	// Dry run first, so that a value that doesn't fit doesn't leave half a file behind
	dry := &stream{w: bufio.NewWriter(io.Discard), index: -1}
	schema.Walk(dry, sd)
	if dry.err != nil {
		return dry.err
	}

	s := &stream{w: bufio.NewWriter(out), index: -1}
	schema.Walk(s, sd)
	if s.err != nil {
		return s.err
	}
	err = s.w.Flush()
	if err != nil {
		return &types.IoError{Op: "write", Err: err}
	}
	return nil
}

// Write_file writes sd to filename via a temporary file in the same directory, so a failed write
// never leaves a broken savefile
func Write_file(filename string, sd *types.Savegame) error {
	err := check(sd)
	if err != nil {
		return types.With_file(err, filename)
	}

	f, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".*.tmp")
	if err != nil {
		return &types.IoError{File: filename, Op: "create", Err: err}
	}
	tmp := f.Name()

	err = Write_savegame(f, sd)
	if err == nil {
		if sync_err := f.Sync(); sync_err != nil {
			err = &types.IoError{Op: "sync", Err: sync_err}
		}
	}
	close_err := f.Close()
	if err == nil && close_err != nil {
		err = &types.IoError{Op: "close", Err: close_err}
	}
	if err != nil {
		os.Remove(tmp)
		return types.With_file(err, filename)
	}

	err = os.Rename(tmp, filename)
	if err != nil {
		os.Remove(tmp)
		return &types.IoError{File: filename, Op: "rename", Err: err}
	}
	return nil
}
