package token

import (
	"math/big"
	"math/bits"

	"tlog.app/go/tlog/tlwire"
)

// Int128 is a two's complement signed 128-bit integer.
// Arithmetic wraps silently on overflow.
type Int128 struct {
	Hi int64
	Lo uint64
}

func Int128FromInt64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// MulAdd returns x*m + a modulo 2^128.
func (x Int128) MulAdd(m, a uint64) Int128 {
	hi, lo := bits.Mul64(x.Lo, m)
	hi += uint64(x.Hi) * m

	lo, c := bits.Add64(lo, a, 0)
	hi += c

	return Int128{Hi: int64(hi), Lo: lo}
}

func (x Int128) Sign() int {
	switch {
	case x.Hi < 0:
		return -1
	case x.Hi == 0 && x.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Int64 returns x as int64 and whether it fits.
func (x Int128) Int64() (int64, bool) {
	v := int64(x.Lo)

	return v, x.Hi == v>>63
}

func (x Int128) Big() *big.Int {
	v := new(big.Int).SetInt64(x.Hi)
	v.Lsh(v, 64)

	return v.Add(v, new(big.Int).SetUint64(x.Lo))
}

func (x Int128) String() string {
	if v, ok := x.Int64(); ok {
		return big.NewInt(v).String()
	}

	return x.Big().String()
}

func (x Int128) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendString(b, x.String())
}
