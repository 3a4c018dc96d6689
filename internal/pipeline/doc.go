// Package pipeline implements the text stages that turn the web UI sources
// into the WebContent.h header.
//
// The stages run in a fixed order, each consuming the full output of the
// previous one:
//   - CSS minification (comments, whitespace, punctuation spacing)
//   - JS compaction (trim lines, drop blank lines, keep line structure)
//   - Inlining of style.css and app.js into the markup
//   - Escaping of the document as a C string literal
//   - Rendering of the guarded PROGMEM header
//
// Every stage is a pure function of its inputs. Reading sources and writing
// the header are handled by the root webcontent package.
package pipeline
