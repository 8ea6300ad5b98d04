// Package help holds the introspected shape of a command tree and renders
// it as indented, word-wrapped terminal text.
//
// The dispatcher produces a Tree by running a builder callback in
// introspect mode; nothing here ever touches real input tokens. The same
// snapshot backs the `help` command, sub-topic lookup, and the candidate
// names used for "did you mean" suggestions after a failed dispatch.
package help

// Entry describes one registered command in a snapshot.
type Entry struct {
	// Usage is the help notation of the naming constraint, e.g. "quit"
	// or "[q|quit]". Empty for fallback entries.
	Usage string

	// Names are the literal words the naming constraint accepts, when it
	// is made of exact words. Data-typed entries have no names.
	Names []string

	// Args holds the usage notation of each positional argument.
	Args []string

	// Description is the caller-supplied description text.
	Description string

	// Runnable reports whether the entry has a terminal handler.
	Runnable bool

	// Loop reports whether the entry starts a nested interactive loop.
	Loop bool

	// Fallback reports whether the entry is an always-matching fallback.
	Fallback bool

	// Children is the entry's sub-tree, in registration order.
	Children []*Entry
}

// Tree is the snapshot of one scope: its entries in registration order.
type Tree struct {
	Entries []*Entry
}

// Names returns every literal command name registered at this level.
func (t *Tree) Names() []string {
	var out []string
	for _, e := range t.Entries {
		out = append(out, e.Names...)
	}
	return out
}

// Descend returns the sub-tree of the entry whose names include word, or
// nil if no entry at this level is named word.
func (t *Tree) Descend(word string) *Tree {
	for _, e := range t.Entries {
		for _, n := range e.Names {
			if n == word {
				return &Tree{Entries: e.Children}
			}
		}
	}
	return nil
}

// Resolve walks the snapshot along the given words, descending by literal
// name as far as possible. It returns the deepest scope reached and how
// many words were consumed getting there. Data-typed levels stop the walk;
// the caller gets the scope where navigation ended, which is also the
// scope whose names are suggestion candidates for the next word.
func (t *Tree) Resolve(words []string) (*Tree, int) {
	scope := t
	for i, w := range words {
		next := scope.Descend(w)
		if next == nil {
			return scope, i
		}
		scope = next
	}
	return scope, len(words)
}

// Lookup finds the entry whose names include word at this level.
func (t *Tree) Lookup(word string) *Entry {
	for _, e := range t.Entries {
		for _, n := range e.Names {
			if n == word {
				return e
			}
		}
	}
	return nil
}
