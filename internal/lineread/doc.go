// Package lineread obtains input lines for the interactive session.
//
// When both stdin and stdout are terminals, input goes through
// golang.org/x/term: the terminal is switched to raw mode and a
// term.Terminal provides line editing and an in-memory history navigated
// with the arrow keys. Otherwise (pipes, redirected files, tests) a Plain
// reader scans newline-terminated lines.
//
// Both readers report end of input as io.EOF and Ctrl-C as ErrInterrupted.
package lineread
