// Package domain defines the substitution cipher's alphabet, key, and error models.
package domain

// Alphabet is the ordered character set the cipher operates over: the lowercase Cyrillic
// letters without "ё", the ten digits, then ".", ",", "-" and a space. A character's
// position in this string is its numeric index.
const Alphabet = "абвгдежзийклмнопрстуфхцчшщъыьэюя0123456789.,- "

// AlphabetIndex maps characters to their positions in an alphabet and back.
// It is read-only after construction and safe for concurrent use.
type AlphabetIndex struct {
	chars     []rune
	positions map[rune]int
}

// defaultIndex is the process-wide index over Alphabet.
var defaultIndex = NewAlphabetIndex(Alphabet)

// DefaultAlphabetIndex returns the shared index over Alphabet.
func DefaultAlphabetIndex() *AlphabetIndex {
	return defaultIndex
}

// NewAlphabetIndex builds an index over the characters of alphabet. Every character
// must appear exactly once; a repeated character keeps its first position.
func NewAlphabetIndex(alphabet string) *AlphabetIndex {
	chars := []rune(alphabet)
	positions := make(map[rune]int, len(chars))
	for i, r := range chars {
		if _, exists := positions[r]; !exists {
			positions[r] = i
		}
	}
	return &AlphabetIndex{
		chars:     chars,
		positions: positions,
	}
}

// Size returns the number of characters in the alphabet.
func (a *AlphabetIndex) Size() int {
	return len(a.chars)
}

// Contains reports whether r belongs to the alphabet.
func (a *AlphabetIndex) Contains(r rune) bool {
	_, ok := a.positions[r]
	return ok
}

// PositionOf returns the index of r. The second result is false when r is not in
// the alphabet.
func (a *AlphabetIndex) PositionOf(r rune) (int, bool) {
	pos, ok := a.positions[r]
	return pos, ok
}

// IndexOf returns the character at position. Positions wrap modulo the alphabet size,
// so every integer maps to a character.
func (a *AlphabetIndex) IndexOf(position int) rune {
	size := len(a.chars)
	position %= size
	if position < 0 {
		position += size
	}
	return a.chars[position]
}

// String returns the alphabet in index order.
func (a *AlphabetIndex) String() string {
	return string(a.chars)
}
