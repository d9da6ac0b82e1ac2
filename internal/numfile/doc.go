// Package numfile reads and writes number files: UTF-8 text with one
// decimal number per line.
//
// Import is tolerant of bad lines. Blank lines are skipped silently, lines
// that do not parse are reported as Warnings and skipped, and only an
// open or read failure aborts the whole import. Export refuses to clobber
// an existing file unless the Prompter answers yes.
package numfile
