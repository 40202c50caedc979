// Package displaylist records device operations into a replayable
// command list.
//
// A [Device] implements [ink.Device] by appending one [Command] per
// call to a [List], deep-copying the arguments the caller could mutate
// afterwards. A recorded List is immutable under [List.Run] and may be
// replayed any number of times, from any number of goroutines, against
// any devices: replay re-issues every command with the replay CTM
// composed onto the recorded one.
package displaylist
