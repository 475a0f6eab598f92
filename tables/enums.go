package tables

import "fmt"

// Raw enumerations from the save file.  Any byte value is representable; Known() says whether it
// is one we have a name for, and String() falls back to "Unknown (n)".

type Nation uint8

func (n Nation) Known() bool { return int(n) < len(Nations) }
func (n Nation) String() string { return safe_lookup(Nations, int(n)) }
func (n Nation) Is_european() bool { return n < NATION_EUROPEAN_COUNT }

type Unit_type uint8

func (u Unit_type) Known() bool { return int(u) < len(Unit_types) }
func (u Unit_type) String() string { return safe_lookup(Unit_types, int(u)) }

type Profession uint8

func (p Profession) Known() bool { return int(p) < len(Professions) }
func (p Profession) String() string { return safe_lookup(Professions, int(p)) }

type Cargo uint8

func (c Cargo) Known() bool { return int(c) < len(Cargos) }
func (c Cargo) String() string { return safe_lookup(Cargos, int(c)) }

type Difficulty uint8

func (d Difficulty) Known() bool { return int(d) < len(Difficulties) }
func (d Difficulty) String() string { return safe_lookup(Difficulties, int(d)) }

type Building uint8

func (b Building) Known() bool { return int(b) < len(Buildings) || b == BUILDING_NOTHING }
func (b Building) String() string {
	if b == BUILDING_NOTHING {
		return "Nothing"
	}
	return safe_lookup(Buildings, int(b))
}

// Control is who is playing a European power
type Control uint8

const (
	CONTROL_HUMAN     Control = 0
	CONTROL_AI        Control = 1
	CONTROL_WITHDRAWN Control = 2
)

func (c Control) Known() bool { return c <= CONTROL_WITHDRAWN }
func (c Control) String() string {
	switch c {
	case CONTROL_HUMAN:
		return "Player"
	case CONTROL_AI:
		return "AI"
	case CONTROL_WITHDRAWN:
		return "Withdrawn"
	}
	return fmt.Sprintf("Unknown (%v)", uint8(c))
}

// Founding_father_owner decodes Header.Founding_father entries: -1 is "nobody yet"
func Founding_father_owner(v int8) string {
	if v == -1 {
		return "-"
	}
	if v >= 0 && v < NATION_EUROPEAN_COUNT {
		return Nations[v]
	}
	return fmt.Sprintf("Unknown (%v)", v)
}
