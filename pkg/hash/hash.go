// Package hash contains the hash combinators used to hash structured values.
package hash

import "math/big"

// DJBInit is the initial accumulator of the DJB hash.
const DJBInit uint32 = 5381

// DJBCombine folds h into the accumulator acc.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines a sequence of hashes, in order.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

func Int64(i int64) uint32 {
	return UInt64(uint64(i))
}

func Bool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func Bytes(bs []byte) uint32 {
	h := DJBInit
	for _, b := range bs {
		h = DJBCombine(h, uint32(b))
	}
	return h
}

// BigInt hashes the sign and the magnitude words of z. A nil z hashes like
// zero.
func BigInt(z *big.Int) uint32 {
	if z == nil {
		return DJB(0)
	}
	h := DJBCombine(DJBInit, uint32(z.Sign()))
	for _, word := range z.Bits() {
		h = DJBCombine(h, UInt64(uint64(word)))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
