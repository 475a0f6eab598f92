package types

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Names in the savefile are NUL-terminated DOS (code page 437) strings in fixed-length slots.
// Anything after the NUL is junk left over by the game, which we keep in the raw array so that
// a file can be saved unchanged.

func decode_text(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	out, err := charmap.CodePage437.NewDecoder().Bytes(raw)
	if err != nil {
		// CP437 maps every byte, so this shouldn't happen
		return string(raw)
	}
	return string(out)
}

// encode_text writes str into a fixed-length slot, NUL padded.  There must be room for the NUL.
func encode_text(slot []byte, str string) error {
	enc, err := charmap.CodePage437.NewEncoder().Bytes([]byte(str))
	if err != nil {
		return fmt.Errorf("%q can not be written in code page 437: %w", str, err)
	}
	if len(enc) >= len(slot) {
		return fmt.Errorf("%q is too long (max length is %v)", str, len(slot)-1)
	}
	copy(slot, enc)
	clear(slot[len(enc):])
	return nil
}

func (p *Player) Get_name() string { return decode_text(p.Name[:]) }
func (p *Player) Get_country() string { return decode_text(p.Country[:]) }

func (p *Player) Set_name(name string) error {
	return encode_text(p.Name[:], name)
}

func (c *Colony) Get_name() string { return decode_text(c.Name[:]) }

func (c *Colony) Set_name(name string) error {
	return encode_text(c.Name[:], name)
}

func (r *Trade_route) Get_name() string { return decode_text(r.Name[:]) }

// Signature_string is the signature as text, for display
func (h *Header) Signature_string() string {
	return decode_text(h.Signature[:])
}
