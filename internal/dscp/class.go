package dscp

import "fmt"

// Kind identifies a DSCP per-hop behaviour group.
type Kind uint8

const (
	ClassSelector Kind = iota
	AssuredForwarding
	ExpeditedForwarding
)

func (k Kind) String() string {
	switch k {
	case ClassSelector:
		return "class-selector"
	case AssuredForwarding:
		return "assured-forwarding"
	case ExpeditedForwarding:
		return "expedited-forwarding"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Class is a named DSCP class. Drop is only meaningful for AssuredForwarding.
type Class struct {
	Kind       Kind
	Precedence uint8
	Drop       uint8
}

// EF code point, RFC 3246.
const (
	efPrecedence = 5
	efDrop       = 3
)

// classRule matches a (precedence, drop) pair and yields its class.
type classRule func(precedence, drop uint8) (Class, bool)

// classRules are evaluated in order; the first match wins. EF must stay ahead of
// the generic AF rule, which would otherwise render it as af53.
var classRules = []classRule{
	func(p, d uint8) (Class, bool) {
		return Class{Kind: ClassSelector, Precedence: p}, d == 0
	},
	func(p, d uint8) (Class, bool) {
		return Class{Kind: ExpeditedForwarding, Precedence: p, Drop: d}, p == efPrecedence && d == efDrop
	},
	func(p, d uint8) (Class, bool) {
		return Class{Kind: AssuredForwarding, Precedence: p, Drop: d}, true
	},
}

// Classify names the class selected by a precedence value and the delay and
// throughput flags, which together form the 2-bit drop precedence.
func Classify(precedence, delay, throughput uint8) Class {
	drop := delay<<1 | throughput
	for _, rule := range classRules {
		if c, ok := rule(precedence, drop); ok {
			return c
		}
	}
	// unreachable: the last rule always matches
	return Class{Kind: AssuredForwarding, Precedence: precedence, Drop: drop}
}

// String renders the conventional lower-case class name: cs<n>, af<p><d> or ef.
func (c Class) String() string {
	switch c.Kind {
	case ClassSelector:
		return fmt.Sprintf("cs%d", c.Precedence)
	case ExpeditedForwarding:
		return "ef"
	default:
		return fmt.Sprintf("af%d%d", c.Precedence, c.Drop)
	}
}
