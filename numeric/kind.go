package numeric

import "fmt"

// Kind is the representation an integer value was produced with.
type Kind int

// Order is important here since iota is being used
const (
	Byte Kind = iota
	Short
	Char
	Int
	Long
)

// Width is the number of bits a kind carries.
func (k Kind) Width() int {
	switch k {
	case Byte:
		return 8
	case Short, Char:
		return 16
	case Int:
		return 32
	case Long:
		return 64
	}
	return 0
}

// Signed reports whether widening k sign-extends. Char is the only unsigned kind.
func (k Kind) Signed() bool {
	return k != Char
}

func (k Kind) String() string {
	switch k {
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Char:
		return "char"
	case Int:
		return "int"
	case Long:
		return "long"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
