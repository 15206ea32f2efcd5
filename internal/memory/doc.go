// Package memory demonstrates ownership rules with explicit, checked
// primitives: a bounded buffer allocator, a single-release cell, an
// exclusive owner that can be moved, and a reference-counted shared owner
// used to build a forward-linked chain.
//
// Every illegal state the primitives can reach (oversized or negative
// allocation, second release, use after move) is reported as a coded error
// from internal/errors instead of being left undefined.
package memory
