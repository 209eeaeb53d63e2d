// # pydown
//
// `pydown` generates a Markdown reference document from the docstrings of a
// program's public functions, classes and enumerations. Docstrings follow a
// small numpydoc-like dialect, and the generated tables and cross-links are
// byte-stable so the output can be checked in and diffed.
//
// Key capabilities:
//
//   - read symbols from a Python source file (imported in a child
//     interpreter), a YAML or JSON symbol manifest, or a Go package.
//   - render one heading per documented symbol, with parameter, attribute and
//     enum value tables; type names starting with an uppercase letter link
//     to that type's heading.
//   - check that every enumeration documents exactly its members.
//   - delete the output file before starting, so a failed run never leaves a
//     stale document behind.
//   - optionally emit HTML, regenerate on change with `--watch`, and dump the
//     discovered symbols with `pydown symbols`.
//
// ## Usage
//
//	pydown [flags] INPUT OUTPUT
//
// Examples:
//
//   - Document a Python module:
//
//     pydown astronomy.py README.md
//
//   - Document a symbol manifest and print to stdout:
//
//     pydown symbols.yaml -
//
//   - Capture a module's symbols so docs can be built without Python:
//
//     pydown symbols astronomy.py > astronomy.yaml
//
// ## Docstring Dialect
//
//	Adds two numbers.
//
//	Parameters
//	----------
//	a : float
//	    First addend.
//	b : float
//	    Second addend.
//
// The first line is the summary when a blank line follows it. Lines outside
// any section form the description. `Parameters` and `Attributes` hold
// `name : type` headers followed by indented description lines. `Values`
// documents an enumeration, one `NAME : description` line per member.
// `Returns`, `Example` and `Examples` sections are accepted and ignored. A
// blank line ends a section. Any line that breaks these rules stops the run.
//
// ## Supported Flags
//
//   - `-c FILE`: read settings from a TOML config file.
//   - `--provider`: `auto` (default, chosen by INPUT's extension), `go`,
//     `manifest` or `python`.
//   - `--format`: `markdown` (default) or `html`.
//   - `--workers N`: number of symbols rendered concurrently.
//   - `--python PATH`: interpreter used for `.py` input.
//   - `--log-level`: `debug`, `info`, `warn` or `error`.
//   - `--watch`: regenerate whenever INPUT changes.
//
// ## Exit Status
//
// 0 when the document was written, 2 for a usage error, 1 for any other
// failure.
package main
