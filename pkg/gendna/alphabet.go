// 19 Oct 2026

package gendna

import (
	"errors"
	"math/bits"
	"math/rand"
)

// Alphabet is the set of symbols we draw from. Every symbol is
// equally likely.
type Alphabet []byte

var (
	Nucleobases    = Alphabet("ACGT")
	IUPACAmbiguous = Alphabet("ACGTN") // with a placeholder for unknown bases
)

var ErrEmptyAlphabet = errors.New("empty alphabet")

// symbolPicker fills lines with random symbols.
// If the alphabet size is a power of two, we cut up 64 random
// bits into nBits sized pieces. Otherwise we fall back to Intn,
// which is slower, but still uniform.
type symbolPicker struct {
	alphabet Alphabet
	rnd      *rand.Rand
	nBits    uint
	mask     uint64
	pool     uint64
	left     uint // symbols remaining in pool
}

func newSymbolPicker(alphabet Alphabet, rnd *rand.Rand) (*symbolPicker, error) {
	n := len(alphabet)
	if n == 0 {
		return nil, ErrEmptyAlphabet
	}
	p := &symbolPicker{alphabet: alphabet, rnd: rnd}
	if n > 1 && n&(n-1) == 0 {
		p.nBits = uint(bits.TrailingZeros(uint(n)))
		p.mask = uint64(n - 1)
	}
	return p, nil
}

// fill overwrites every byte of line with a random symbol.
func (p *symbolPicker) fill(line []byte) {
	if p.nBits == 0 {
		n := len(p.alphabet)
		for i := range line {
			line[i] = p.alphabet[p.rnd.Intn(n)]
		}
		return
	}
	for i := range line {
		if p.left == 0 {
			p.pool = p.rnd.Uint64()
			p.left = 64 / p.nBits
		}
		line[i] = p.alphabet[p.pool&p.mask]
		p.pool >>= p.nBits
		p.left--
	}
}
