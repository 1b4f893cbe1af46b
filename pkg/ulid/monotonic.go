package ulid

// NextMonotonic returns the successor of prev for timestamp. Within the same
// millisecond the randomness field of prev is incremented, wrapping to zero
// on overflow; otherwise a fresh ULID is drawn from src.
//
// The result may be smaller than prev if the clock moved backwards or the
// randomness field wrapped. Use NextStrictlyMonotonic to detect that.
func NextMonotonic(prev ULID, timestamp uint64, src RandomSource) ULID {
	if prev.Timestamp() == timestamp {
		return prev.Increment()
	}
	return New(timestamp, src)
}

// NextStrictlyMonotonic is like NextMonotonic but reports false when the
// result would not be strictly greater than prev.
func NextStrictlyMonotonic(prev ULID, timestamp uint64, src RandomSource) (ULID, bool) {
	next := NextMonotonic(prev, timestamp, src)
	if next.Compare(prev) <= 0 {
		return ULID{}, false
	}
	return next, true
}
