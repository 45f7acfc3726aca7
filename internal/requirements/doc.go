// Package requirements derives a requirements manifest from the import
// statements of a Python source file.
//
// Scanning is deliberately line based. A trimmed line that starts with
// "import " or "from " contributes its second whitespace-separated token,
// cut at the first dot. Nothing else is parsed, so imports inside
// functions or conditionals are picked up while continuation lines are
// not.
//
// Candidates that appear in the interpreter's StdlibSet are dropped. The
// survivors are deduplicated, sorted, and written one per line, replacing
// any previous manifest.
package requirements
