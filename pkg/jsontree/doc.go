// Package jsontree is a small generic tree for JSON settings documents.
//
// A Document is a recursive map of string keys to JSON values. Overrides are
// applied with Upsert, which creates missing intermediate objects and never
// touches sibling keys, so merging the same overrides twice yields the same
// document as merging them once. An existing intermediate that is not an
// object is never overwritten; Upsert and Apply return ErrNotObject instead.
//
// Input is read leniently: comments and trailing commas (as written by VS Code
// and Windows Terminal) are standardized away with hujson before decoding.
package jsontree
