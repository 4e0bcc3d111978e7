// Package graph implements a sequence graph: a collection of named,
// directed DNA/RNA segments ("sections") connected by directed links,
// together with a depth-bounded k-mer walker and an exact-match k-mer
// index over it.
//
// A graph moves through three states over its lifetime: Pool, while
// segments and links are still being appended; Archive, once the graph
// is frozen and its link table has been compacted for traversal; and
// Index, once an exact-match k-mer index has been built over an
// archive. Each state is its own Go type, and a transition consumes the
// value it starts from -- callers should not keep using a Pool once
// Freeze has returned an Archive, the same way a closed file should not
// be read from again.
package graph
