package meta

import (
	"strconv"
	"strings"
)

// Shape describes the dimensions of a model input or output tensor.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Size returns the number of elements a tensor of this shape holds.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s {
		size *= dim
	}
	return size
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String formats the shape as a tuple, e.g. "(52,)" or "(4, 13)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(dim))
	}
	if len(s) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}

// Each accessor returns a new slice, so callers may modify the result freely.

func DeckShape() Shape {
	return Shape{CardsInDeck}
}

func MainInputShape() Shape {
	return Shape{TotalScalarFeatures}
}

func SuitsRanksShape() Shape {
	return Shape{NumSuits, NumRanks}
}

func PointsSoFarShape() Shape {
	return Shape{PointsSoFarLen}
}

// ScoresShape is the expected score head: one value per card.
func ScoresShape() Shape {
	return DeckShape()
}

// WinTrickProbsShape is the trick-win head: one probability per card.
func WinTrickProbsShape() Shape {
	return DeckShape()
}

// MoonProbsShape is the moon head: MoonClasses logits per card, flattened.
func MoonProbsShape() Shape {
	return Shape{MoonClasses * CardsInDeck}
}
