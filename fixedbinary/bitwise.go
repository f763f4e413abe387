package fixedbinary

// And returns the bitwise AND of b and other, which must share b's width.
func (b Binary) And(other Binary) Binary {
	mustMatchWidth(b, other)
	if b.isSmall() {
		return FromUint64(b.bits, b.small&other.small)
	}
	out := b.clone()
	out.large.InPlaceIntersection(other.large)
	return out
}

// Or returns the bitwise OR of b and other, which must share b's width.
func (b Binary) Or(other Binary) Binary {
	mustMatchWidth(b, other)
	if b.isSmall() {
		return FromUint64(b.bits, b.small|other.small)
	}
	out := b.clone()
	out.large.InPlaceUnion(other.large)
	return out
}

// Xor returns the bitwise XOR of b and other, which must share b's width.
func (b Binary) Xor(other Binary) Binary {
	mustMatchWidth(b, other)
	if b.isSmall() {
		return FromUint64(b.bits, b.small^other.small)
	}
	out := b.clone()
	out.large.InPlaceSymmetricDifference(other.large)
	return out
}

// Not returns the bitwise complement, masked to Bits().
func (b Binary) Not() Binary {
	if b.isSmall() {
		return FromUint64(b.bits, ^b.small&smallMask(b.bits))
	}
	out := New(b.bits)
	for i := 0; i < b.bits; i++ {
		if !b.large.Test(uint(i)) {
			out.large.Set(uint(i))
		}
	}
	return out
}

// Shl shifts left by k bits, discarding overflow past Bits()-1.
func (b Binary) Shl(k int) Binary {
	if k <= 0 {
		return b.clone()
	}
	if k >= b.bits {
		return New(b.bits)
	}
	if b.isSmall() {
		return FromUint64(b.bits, (b.small<<uint(k))&smallMask(b.bits))
	}
	out := New(b.bits)
	for i := b.bits - 1; i >= k; i-- {
		if b.large.Test(uint(i - k)) {
			out.large.Set(uint(i))
		}
	}
	return out
}

// Shr shifts right by k bits (logical, since values are unsigned).
func (b Binary) Shr(k int) Binary {
	if k <= 0 {
		return b.clone()
	}
	if k >= b.bits {
		return New(b.bits)
	}
	if b.isSmall() {
		return FromUint64(b.bits, b.small>>uint(k))
	}
	out := New(b.bits)
	for i := 0; i < b.bits-k; i++ {
		if b.large.Test(uint(i + k)) {
			out.large.Set(uint(i))
		}
	}
	return out
}

// Rotl rotates left by k bits, wrapping modulo Bits().
func (b Binary) Rotl(k int) Binary {
	n := b.bits
	k = ((k % n) + n) % n
	if k == 0 {
		return b.clone()
	}
	return b.Shl(k).Or(b.Shr(n - k))
}

// Rotr rotates right by k bits, wrapping modulo Bits().
func (b Binary) Rotr(k int) Binary {
	n := b.bits
	k = ((k % n) + n) % n
	return b.Rotl(n - k)
}
