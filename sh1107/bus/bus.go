// Package bus defines the two-wire-bus side of an emulated device and
// an adapter that exposes it as a periph.io I2C bus, so host code
// written against periph can drive the emulator like real hardware.
package bus

// Device is the bus-facing contract of an emulated chip. The host
// invokes these as discrete, non-reentrant events: Connect at the start
// of every transaction, Write per payload byte, Read for read phases.
type Device interface {
	// Connect signals the start of a bus transaction.
	Connect()

	// Write delivers one byte; the return value is the ack bit.
	Write(value uint8) bool

	// Read returns one byte for a read phase.
	Read() uint8
}
