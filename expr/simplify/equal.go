package simplify

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/symbo/expr"
)

// CanonicalForm simplifies a tree under the configuration All and returns its
// canonical rendering.
func CanonicalForm(n expr.Node) (string, error) {
	s, err := Simplify(n, All())
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Equal checks two trees for semantic equality: both are simplified under the
// configuration All and their canonical renderings are compared.
func Equal(a, b expr.Node) (bool, error) {
	fa, err := CanonicalForm(a)
	if err != nil {
		return false, err
	}
	fb, err := CanonicalForm(b)
	if err != nil {
		return false, err
	}
	return fa == fb, nil
}

type canonicalKey struct {
	Form string
}

// Hash returns a hash of the canonical form of a tree. Trees which are Equal
// have identical hashes.
func Hash(n expr.Node) (string, error) {
	form, err := CanonicalForm(n)
	if err != nil {
		return "", err
	}
	return structhash.Hash(canonicalKey{Form: form}, 1)
}
