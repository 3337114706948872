package expr

import (
	"bytes"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/utils"
)

// Canonical ordering:
//
//   plenary nodes < unary nodes < literals < atoms
//
// Literals compare by value. All other ties are broken by a structural hash of the
// canonical string form, which makes the order total and independent of the
// order in which operands have been written. Literals sort before atoms to keep
// the order transitive.

func rank(n Node) int {
	switch n.Kind() {
	case PlenaryKind:
		return 0
	case UnaryKind:
		return 1
	case NumberKind:
		return 2
	}
	return 3
}

// hashKey is the structure fed to structhash. Its only field is the canonical
// rendering of a node.
type hashKey struct {
	Form string
}

// StructuralHash returns a hash of the canonical string form of a tree.
// Trees with identical renderings have identical hashes.
func StructuralHash(n Node) []byte {
	return formHash(n.String())
}

func formHash(form string) []byte {
	return structhash.Sha1(hashKey{Form: form}, 1)
}

// sortKey caches everything needed to place a node in canonical order.
type sortKey struct {
	node   Node
	form   string
	rank   int
	number *Number
	hash   []byte
}

func keyFor(n Node, form string) sortKey {
	k := sortKey{node: n, form: form, rank: rank(n)}
	if num, ok := n.(*Number); ok {
		k.number = num
	}
	k.hash = formHash(form)
	return k
}

func compareKeys(a, b sortKey) int {
	if a.rank != b.rank {
		return a.rank - b.rank
	}
	if a.number != nil && b.number != nil {
		switch {
		case a.number.Value < b.number.Value:
			return -1
		case a.number.Value > b.number.Value:
			return 1
		}
		return 0
	}
	return bytes.Compare(a.hash, b.hash)
}

var keyComparator utils.Comparator = func(a, b interface{}) int {
	return compareKeys(a.(sortKey), b.(sortKey))
}

// Compare implements the canonical total order on trees. It returns a negative
// number if a sorts before b, 0 if both are canonically identical, and a
// positive number otherwise.
func Compare(a, b Node) int {
	return compareKeys(keyFor(a, a.String()), keyFor(b, b.String()))
}

// Sorted returns the given nodes in canonical order. The argument is not modified.
func Sorted(nodes []Node) []Node {
	forms := make([]string, len(nodes))
	for i, n := range nodes {
		forms[i] = n.String()
	}
	return sortByForms(nodes, forms)
}

// sortByForms sorts nodes with pre-rendered canonical forms.
func sortByForms(nodes []Node, forms []string) []Node {
	keys := sortedKeys(nodes, forms)
	sorted := make([]Node, len(keys))
	for i, k := range keys {
		sorted[i] = k.node
	}
	return sorted
}

func sortedKeys(nodes []Node, forms []string) []sortKey {
	values := make([]interface{}, len(nodes))
	for i, n := range nodes {
		values[i] = keyFor(n, forms[i])
	}
	utils.Sort(values, keyComparator)
	keys := make([]sortKey, len(values))
	for i, v := range values {
		keys[i] = v.(sortKey)
	}
	return keys
}

// Canonical returns a copy of a tree with the operands of every plenary node
// in canonical order.
func Canonical(n Node) Node {
	switch x := n.(type) {
	case *Unary:
		return &Unary{Op: x.Op, Child: Canonical(x.Child)}
	case *Plenary:
		ch := make([]Node, len(x.Children))
		for i, c := range x.Children {
			ch[i] = Canonical(c)
		}
		return &Plenary{Op: x.Op, Children: Sorted(ch)}
	}
	return Copy(n)
}
