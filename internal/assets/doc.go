// Package assets loads the HTML layout template and stylesheet used to
// render the vault overview. Assets ship embedded in the binary; a
// filesystem loader allows overriding them from a directory.
package assets
