package readers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"coldump/schema"
	"coldump/types"
)

func read_fixed(r io.Reader, size int) ([]byte, error) {
	into := make([]byte, size)
	_, err := io.ReadFull(r, into)
	if err != nil {
		return nil, err
	}
	return into, nil
}

func Read_fixed_string(target string, r io.Reader) (int, error) {
	target_buf := []byte(target)
	read_buf, err := read_fixed(r, len(target_buf))

	if err != nil {
		return 0, err
	}

	if !slices.Equal(read_buf, target_buf) {
		return 0, errors.New("Could not find string " + target + " (got " + string(read_buf) + ")")
	}

	return len(read_buf), nil
}

// Read_uint_le reads a little-endian unsigned int of any size up to 4 bytes
func Read_uint_le(r io.Reader, size int) (uint32, error) {
	bytes, err := read_fixed(r, size)
	if err != nil {
		return 0, err
	}
	return le(bytes), nil
}

func le(bytes []byte) uint32 {
	out := uint32(0)
	for cur := range bytes {
		out = out + uint32(bytes[cur])<<(8*cur)
	}
	return out
}

// stream decodes a savefile front to back, as a schema.Coder.
//
// The first error sticks: everything after it reads as zero, and the walk carries on harmlessly
// to the end.  Variable-length sections come out empty because their counters are zero.
type stream struct {
	r       *bufio.Reader
	buf     [4]byte
	section string
	index   int
	offset  int
	err     error

	anomalies []types.FormatError
}

func new_stream(r io.Reader) *stream {
	return &stream{r: bufio.NewReader(r), index: -1}
}

func (s *stream) fail(err error) {
	if s.err != nil {
		return
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = &types.FormatError{Section: s.section, Index: s.index, Kind: types.FK_TRUNCATED}
		return
	}
	s.err = &types.IoError{Op: fmt.Sprintf("read at offset %v", s.offset), Err: err}
}

func (s *stream) read(into []byte) {
	if s.err != nil {
		clear(into)
		return
	}
	n, err := io.ReadFull(s.r, into)
	s.offset += n
	if err != nil {
		clear(into)
		s.fail(err)
	}
}

func (s *stream) uint_le(size int) uint32 {
	s.read(s.buf[:size])
	return le(s.buf[:size])
}

func (s *stream) U8(v *uint8) { *v = uint8(s.uint_le(1)) }
func (s *stream) I8(v *int8) { *v = int8(s.uint_le(1)) }
func (s *stream) U16(v *uint16) { *v = uint16(s.uint_le(2)) }
func (s *stream) I16(v *int16) { *v = int16(s.uint_le(2)) }
func (s *stream) U32(v *uint32) { *v = s.uint_le(4) }
func (s *stream) I32(v *int32) { *v = int32(s.uint_le(4)) }
func (s *stream) Bytes(b []byte) { s.read(b) }

func (s *stream) Bits(g *schema.Group, vals ...*uint8) {
	unit := s.uint_le(g.Unit)
	for i, f := range g.Fields {
		v := schema.Unpack(unit, f)
		*vals[i] = uint8(v)
		if s.err == nil && !f.In_range(v) {
			// Keep going: the value is preserved, it just doesn't mean anything we know of
			s.anomalies = append(s.anomalies, types.FormatError{
				Section: s.section, Index: s.index, Field: g.Name + "." + f.Name,
				Kind: types.FK_OUT_OF_RANGE, Value: v, Limit: f.Limit(),
			})
		}
	}
}

func (s *stream) Rest(b *[]byte) {
	if s.err != nil {
		return
	}
	rest, err := io.ReadAll(s.r)
	if err != nil {
		s.fail(err)
		return
	}
	s.offset += len(rest)
	if len(rest) > 0 {
		*b = rest
	}
}

func (s *stream) Enter(section string, index int) {
	s.section, s.index = section, index
}

func (s *stream) Decoding() bool { return true }

// Read_savegame decodes a whole savefile.
//
// Only a short file or a failing reader is an error.  Problems that still leave every byte
// accounted for (bad signature, out-of-range bit fields) are listed in the result's Anomalies.
func Read_savegame(r io.Reader) (*types.Savegame, error) {
	s := new_stream(r)
	sd := &types.Savegame{}
	schema.Walk(s, sd)
	if s.err != nil {
		return nil, s.err
	}

	if !sd.Signature_valid() {
		sd.Anomalies = append(sd.Anomalies, types.FormatError{
			Section: "header", Index: -1, Field: "signature", Kind: types.FK_BAD_SIGNATURE,
		})
	}
	sd.Anomalies = append(sd.Anomalies, s.anomalies...)
	return sd, nil
}

// Read_header decodes just the header, which is enough to say which year and turn a save is from
func Read_header(r io.Reader) (*types.Header, error) {
	s := new_stream(r)
	h := &types.Header{}
	s.Enter("header", -1)
	schema.Header(s, h)
	if s.err != nil {
		return nil, s.err
	}
	return h, nil
}

func Read_file(filename string) (*types.Savegame, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &types.IoError{File: filename, Op: "open", Err: err}
	}
	defer f.Close()

	sd, err := Read_savegame(f)
	if err != nil {
		return nil, types.With_file(err, filename)
	}
	for i := range sd.Anomalies {
		sd.Anomalies[i].File = filename
	}
	return sd, nil
}

func Read_header_file(filename string) (*types.Header, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &types.IoError{File: filename, Op: "open", Err: err}
	}
	defer f.Close()

	h, err := Read_header(f)
	return h, types.With_file(err, filename)
}

// Is_savefile is a quick check that a file starts with the right signature
func Is_savefile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()
	_, err = Read_fixed_string(types.MAGIC, f)
	return err == nil
}
