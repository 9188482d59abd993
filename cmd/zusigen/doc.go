/*
zusigen compiles a Zusi XSD schema into a self-contained Go package: a
record type per schema type, plus a recursive-descent parser function
per type.

Usage:

	zusigen [flags] <root-xsd>

The root XSD is read the same way the schema loader resolves any
xsd:include it names, recursively, from the same directory; xsd:import
is not followed. Four files are written to --out-dir:

	records_fwd.go   manifest of every reachable type name
	records.go       the record type definitions
	parsers_fwd.go   parser function signatures, for forward reference
	parsers.go       the parser function bodies

--whitelist Parent::Name (repeatable) and --whitelist-file restrict
which attributes and child elements are retained on the generated
record types; by default every schema member is emitted.

zusigen exits 0 on success and 1 on an invalid flag, a schema error, or
a code-generation failure.
*/
package main
