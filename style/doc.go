// @focus: #sys { style }
// Package style provides cross-platform terminal color control.
//
// Features:
//   - Named, 256-palette and 24-bit color requests with a total text parser
//   - Escape-sequence and native-console backends, selected once per facade
//   - Best-effort semantics: styling calls never fail, they degrade
//
// The escape path bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. All terminal mutation flows through a shared, mutex-serialized
// screen handle so sibling subsystems can write to the same terminal.
package style
