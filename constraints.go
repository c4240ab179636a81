package bertap

import "golang.org/x/exp/constraints"

/*
Integer is the numeric constraint shared by [byteWidth] and
[clampNonNegative]. It is the one place this package still leans on
golang.org/x/exp/constraints now that the schema-level constraint
system the teacher built around it (Range, Size, Enumeration,
Recurrence) has no home in a tag/length rewriter that never interprets
values — see DESIGN.md.
*/
type Integer = constraints.Integer
