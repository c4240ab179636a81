/*
Package bertap rewrites a BER-encoded ASN.1 stream whose constructed
values may use the indefinite-length form into an equivalent stream in
which every length is stated definitely.

The transformation is byte-exact: tag octets and primitive content
octets are preserved verbatim; only the length fields of constructed
items that were indefinite (or whose descendants were) change. This
exists because many downstream consumers — telecom TAP3 processors
among them — accept only definite-length BER.

The package does not interpret tag semantics: it has no schema and
never decodes a primitive value's content, only its length. See
[Convert] for the single entry point, and the [Source]/[Sink]
interfaces for what a caller must supply.
*/
package bertap
