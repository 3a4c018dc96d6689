// Package webcontent regenerates WebContent.h, the flash-resident web UI
// header of an ESP32 firmware.
//
// # Quick Start
//
// Create a generator rooted at the firmware project and run it:
//
//	gen, err := webcontent.NewGenerator(webcontent.WithRoot("."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Total size: %d chars\n", result.Size())
//
// Generate writes WebContent.h next to the data directory. Use Build to run
// the same pipeline without touching the filesystem.
//
// # Pipeline
//
// The generation process follows these stages:
//
//  1. Load data/index.html, data/style.css and data/app.js as UTF-8
//  2. Strip comments and collapse whitespace in the stylesheet
//  3. Trim lines and drop blank lines in the script
//  4. Replace the stylesheet link and script reference tags with inline blocks
//  5. Escape the assembled document as a C string literal
//  6. Render the guarded PROGMEM declaration
//
// Input paths are fixed relative to the root. Only the root itself is
// configurable.
//
// # Missing Tags
//
// When the markup lacks one of the reference tags, that asset is not inlined
// and generation still succeeds. Result.Inlined reports what was replaced.
// Use WithStrict(true) to turn a missing tag into ErrTagNotFound.
//
// # Error Handling
//
// Errors can be checked with errors.Is:
//
//	result, err := gen.Generate()
//	if errors.Is(err, webcontent.ErrSourceNotFound) {
//	    // data file missing
//	}
//
// Available sentinel errors:
//   - ErrSourceNotFound: a data file does not exist
//   - ErrSourceRead: a data file exists but cannot be read
//   - ErrInvalidEncoding: a data file is not valid UTF-8
//   - ErrTagNotFound: strict mode and a reference tag is missing
//   - ErrWriteHeader: WebContent.h could not be written
//
// # Thread Safety
//
// A Generator holds no mutable state after construction. Build and Generate
// may be called from several goroutines, although concurrent Generate calls
// race on the output file.
package webcontent
