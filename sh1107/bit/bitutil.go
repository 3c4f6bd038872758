package bit

// IsSet will check if the bit at the specified index is Set to 1 or not.
func IsSet(index, byte uint8) bool {
	return ((byte >> index) & 1) == 1
}

// LowNibble returns the low 4 bits of a byte.
func LowNibble(value uint8) uint8 {
	return value & 0x0F
}

// HighNibble returns the high 4 bits of a byte, shifted down.
func HighNibble(value uint8) uint8 {
	return (value >> 4) & 0x0F
}

// Mod returns the mathematical (always non-negative) remainder of value
// divided by m. The remapping math in the renderer relies on this for
// negative intermediate coordinates.
func Mod(value, m int) int {
	r := value % m
	if r < 0 {
		r += m
	}
	return r
}
