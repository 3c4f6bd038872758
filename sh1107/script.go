package sh1107

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ocallegari/go-sh1107/sh1107/command"
)

// Transaction holds the write phase of one bus transaction: the bytes
// delivered between connect and stop, control byte first.
type Transaction []uint8

// ParseScript reads hex-encoded bus traffic, one transaction per line.
// Bytes are separated by whitespace, with or without an 0x prefix;
// '#' starts a comment. Blank lines are skipped.
func ParseScript(r io.Reader) ([]Transaction, error) {
	var script []Transaction

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		txn := make(Transaction, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseUint(strings.TrimPrefix(field, "0x"), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("script: line %d: bad byte %q", lineNo, field)
			}
			txn = append(txn, uint8(v))
		}
		script = append(script, txn)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	return script, nil
}

// Control bytes used by generated traffic: continuous command phase and
// continuous data phase.
const (
	ctrlCommand = 0x00
	ctrlData    = command.ControlDC
)

// DemoScript synthesizes an init sequence followed by a block
// checkerboard, one page of image data per transaction. It stands in
// for captured traffic when none is supplied.
func DemoScript(width, height int) []Transaction {
	script := []Transaction{
		{ctrlCommand,
			command.DisplayOn,
			command.SetContrast, 0x7F,
			command.SetPageAddrMode,
			command.SetDispStartLine, 0x00,
		},
	}

	pages := height / 8
	for page := 0; page < pages; page++ {
		script = append(script, Transaction{ctrlCommand,
			uint8(command.SetPageAddress + page),
			command.SetLowColumn,
			command.SetHighColumn,
		})

		data := Transaction{ctrlData}
		for col := 0; col < width; col++ {
			value := uint8(0x00)
			if (col/8+page)%2 == 0 {
				value = 0xFF
			}
			data = append(data, value)
		}
		script = append(script, data)
	}

	return script
}
