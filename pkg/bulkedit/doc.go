// Package bulkedit renders a project's marks as editable text and turns the
// edited text back into a replacement mapping.
//
// The format is line oriented:
//
//	# comment lines start with optional whitespace and "#"
//	<key> <path>
//
// Blank lines are ignored. The key runs up to the first whitespace, the
// rest of the line is the path. Rendered directory paths carry a trailing
// "/", which is advisory only when parsing. A parsed document replaces the
// project's marks entirely: keys missing from the text are removed.
package bulkedit
