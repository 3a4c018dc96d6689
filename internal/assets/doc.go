// Package assets loads the web UI sources and the header template.
//
// # Loader Architecture
//
//	SourceLoader (interface)
//	    └── FilesystemLoader  - reads data/index.html, data/style.css, data/app.js
//	TemplateLoader (interface)
//	    └── EmbeddedLoader    - serves the header template compiled into the binary
//
// FilesystemLoader is rooted at a project directory. Each Role maps to one
// fixed relative path below that directory; callers cannot request other
// files.
//
// # Directory Structure
//
//	{basePath}/
//	├── data/
//	│   ├── index.html
//	│   ├── style.css
//	│   └── app.js
//	└── WebContent.h          # generated
//
// # Encoding
//
// Sources are decoded as UTF-8. A leading byte order mark is dropped and
// any invalid byte sequence fails the load with ErrInvalidEncoding.
//
// # Symlinks
//
// Symlinks are followed, for the project root as well as for data/ and the
// files in it. Only the three fixed paths are ever read, and each role maps
// to exactly one of them.
package assets
