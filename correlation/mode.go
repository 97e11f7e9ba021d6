// SPDX-License-Identifier: MIT

package correlation

import "fmt"

// Mode selects how the pair loop is executed.
type Mode int

const (
	// Sequential walks patterns in ascending order on the calling goroutine.
	Sequential Mode = iota
	// Parallel splits the pattern range into contiguous chunks processed
	// by a bounded pool of goroutines.
	Parallel
	// Device is accelerator execution. It is reserved and unimplemented.
	Device
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "Sequential"
	case Parallel:
		return "Parallel"
	case Device:
		return "Device"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// valid reports whether m is one of the declared modes.
func (m Mode) valid() bool {
	return m >= Sequential && m <= Device
}
