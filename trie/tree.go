package trie

import (
	"strings"
	"unicode/utf8"
)

// String renders the trie as a box-drawing tree. Children are listed in
// ascending key order and word nodes are marked with " *".
func (t *Trie) String() string {
	return t.root.tree()
}

func (n *Node) tree() string {
	var lines []string
	if n.prefix != "" {
		lines = append(lines, n.prefix)
	}

	n.walkTree(&lines, nil)

	if n.prefix == "" && len(lines) > 0 {
		repl := "┌"
		if len(n.children) == 1 {
			repl = "─"
		}
		_, size := utf8.DecodeRuneInString(lines[0])
		lines[0] = repl + lines[0][size:]
	}

	return strings.Join(lines, "\n")
}

func (n *Node) walkTree(lines *[]string, indent []string) {
	keys := n.Keys()
	for i, k := range keys {
		child := n.children[k]
		last := i == len(keys)-1

		var b strings.Builder
		for _, s := range indent {
			b.WriteString(s)
		}
		if last {
			b.WriteString("└─")
		} else {
			b.WriteString("├─")
		}
		b.WriteString(child.Part())
		if child.isWord {
			b.WriteString(" *")
		}
		*lines = append(*lines, b.String())

		next := "│ "
		if last {
			next = "  "
		}
		child.walkTree(lines, append(indent, next))
	}
}
