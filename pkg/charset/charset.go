// Package charset defines the fixed character pools used for password generation
package charset

// Category identifies one of the fixed character pools.
type Category int

const (
	// Letters is the pool of lowercase and uppercase ASCII letters.
	Letters Category = iota

	// Digits is the pool of decimal digits.
	Digits

	// Symbols is the pool of printable special characters. Backtick and
	// quote characters are excluded to avoid shell and display ambiguity.
	Symbols

	// Alphanumeric is the concatenation of Letters and Digits.
	Alphanumeric

	// Full is the concatenation of Alphanumeric and Symbols.
	Full
)

// String returns the pool name for the category.
func (c Category) String() string {
	switch c {
	case Letters:
		return "letters"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	case Alphanumeric:
		return "alphanumeric"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Pool is an immutable ordered set of candidate password characters.
// Pools are defined once at init and never mutated.
type Pool struct {
	Name    string
	Members []byte
}

// Size returns the number of characters in the pool.
func (p Pool) Size() int {
	return len(p.Members)
}

const (
	lettersMembers = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitsMembers  = "0123456789"
	symbolsMembers = "!@#$%^&*()-_=+[]{}<?>~"
)

var (
	lettersPool      = Pool{Name: "letters", Members: []byte(lettersMembers)}
	digitsPool       = Pool{Name: "digits", Members: []byte(digitsMembers)}
	symbolsPool      = Pool{Name: "symbols", Members: []byte(symbolsMembers)}
	alphanumericPool = Pool{Name: "alphanumeric", Members: []byte(lettersMembers + digitsMembers)}
	fullPool         = Pool{Name: "full", Members: []byte(lettersMembers + digitsMembers + symbolsMembers)}
)

// Lookup returns the pool for the given category. Unknown categories map to
// the full pool so the lookup is total.
func Lookup(c Category) Pool {
	switch c {
	case Letters:
		return lettersPool
	case Digits:
		return digitsPool
	case Symbols:
		return symbolsPool
	case Alphanumeric:
		return alphanumericPool
	default:
		return fullPool
	}
}
