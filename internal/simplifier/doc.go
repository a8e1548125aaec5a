/*
Package simplifier trains a raw design document into the simplified
intermediate representation defined in pkg/domain.

The entry point is Parser.Parse, which detects the document shape, walks
each root node recursively, derives CSS-like paint/effect/layout descriptors
per node, and deduplicates repeated descriptors into a content-addressed
style table. The walk is single-threaded and synchronous; the style table is
created fresh per Parse call and owned exclusively by it, so the package
needs no locking and callers may parallelize only around whole Parse calls.
*/
package simplifier
