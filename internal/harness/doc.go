// Package harness replays scripted key scenarios against the navigation
// controller and compares the resulting traces with golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: add_ticker
//	description: "Adding a ticker lands back in the menu with a notice"
//	seed:
//	  - symbol: AAPL
//	    notes: Core holding
//	steps:
//	  - key: down
//	  - key: enter
//	  - text: MSFT
//	  - key: enter
//	expect:
//	  state: main-menu
//	  message: 'Ticker "MSFT" added.'
//	  records:
//	    - symbol: AAPL
//	    - symbol: MSFT
//
// A step is either a named key (up, down, enter, backspace, esc, quit, or
// a single character) or a text run typed one rune at a time. The expect
// clause checks the final state, the transient message, and the stored
// records in id order; omitted fields are not checked.
//
// # Deterministic Execution
//
// Every scenario runs a real controller against a fresh in-memory database
// with a stepping clock, so identical scripts produce identical traces
// across runs. The trace records the state after every step and feeds the
// golden comparison in testdata/golden.
package harness
