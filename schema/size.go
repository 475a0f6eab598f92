package schema

import (
	"coldump/types"
)

// counter is a Coder that only adds up sizes
type counter struct {
	n int
}

func (c *counter) U8(*uint8) { c.n++ }
func (c *counter) I8(*int8) { c.n++ }
func (c *counter) U16(*uint16) { c.n += 2 }
func (c *counter) I16(*int16) { c.n += 2 }
func (c *counter) U32(*uint32) { c.n += 4 }
func (c *counter) I32(*int32) { c.n += 4 }
func (c *counter) Bytes(b []byte) { c.n += len(b) }
func (c *counter) Bits(g *Group, _ ...*uint8) { c.n += g.Unit }
func (c *counter) Rest(b *[]byte) { c.n += len(*b) }
func (c *counter) Enter(string, int) {}
func (c *counter) Decoding() bool { return false }

// Size_of is how many bytes walk produces
func Size_of(walk func(c Coder)) int {
	c := &counter{}
	walk(c)
	return c.n
}

// Encoded_size is the exact length of sd once written, trailer included
func Encoded_size(sd *types.Savegame) int {
	return Size_of(func(c Coder) { Walk(c, sd) })
}
