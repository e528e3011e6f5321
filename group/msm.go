package group

import (
	"math/bits"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lambdaclass/pinocchio-lambda-vm/ff"
)

// msmParallelThreshold is the term count below which the sequential path is
// cheaper than spawning workers.
const msmParallelThreshold = 32

// msmBucketThreshold is the term count at or above which the bucket method beats
// per-term scalar multiplications.
const msmBucketThreshold = 256

// MSM computes the multi-scalar multiplication sum_i scalars[i] * hidings[i]
// in G. Surplus entries on either side are ignored; with no terms at all the
// result is the group identity. Mid-sized inputs evaluate terms concurrently
// with a sequential fold, so the result is bitwise identical to the
// sequential computation; large inputs switch to Pippenger buckets, which
// return the same group element (possibly under another projective
// representative).
func MSM[G, T any](s Bilinear[G, T], scalars []ff.Elem, hidings []G) G {
	n := len(scalars)
	if len(hidings) < n {
		n = len(hidings)
	}
	if n == 0 {
		return s.Identity()
	}
	if n >= msmBucketThreshold {
		return BucketMSM(s, scalars[:n], hidings[:n], bucketWindow(n))
	}
	terms := make([]G, n)
	if n < msmParallelThreshold {
		for i := 0; i < n; i++ {
			terms[i] = s.ScalarMul(hidings[i], scalars[i].Representative())
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(runtime.NumCPU())
		for i := 0; i < n; i++ {
			i := i
			eg.Go(func() error {
				terms[i] = s.ScalarMul(hidings[i], scalars[i].Representative())
				return nil
			})
		}
		_ = eg.Wait()
	}
	acc := terms[0]
	for i := 1; i < n; i++ {
		acc = s.Op(acc, terms[i])
	}
	return acc
}

// bucketWindow picks the Pippenger window width for n terms. The usual
// log(n)-ish heuristic; anything in [2, 16] is correct, this only tunes the
// bucket-count vs window-count trade.
func bucketWindow(n int) uint {
	w := uint(2)
	for c := n; c >= 32; c >>= 2 {
		w += 2
	}
	if w > 16 {
		w = 16
	}
	return w
}

// BucketMSM computes the same sum as MSM by Pippenger's bucket method with
// the given window width in bits. Scalars are split into windows; within a
// window every hiding falls into the bucket of its scalar chunk, and the
// buckets are folded with a running suffix sum so bucket b contributes b
// times its content without any scalar multiplication. Window widths
// outside [1, 16] are clamped.
func BucketMSM[G, T any](s Bilinear[G, T], scalars []ff.Elem, hidings []G, window uint) G {
	n := len(scalars)
	if len(hidings) < n {
		n = len(hidings)
	}
	if n == 0 {
		return s.Identity()
	}
	if window < 1 {
		window = 1
	}
	if window > 16 {
		window = 16
	}

	maxBits := 0
	for _, c := range scalars[:n] {
		if b := bits.Len64(c.Representative()); b > maxBits {
			maxBits = b
		}
	}
	if maxBits == 0 {
		return s.Identity()
	}
	windows := (maxBits + int(window) - 1) / int(window)
	mask := uint64(1)<<window - 1

	buckets := make([]G, mask)
	occupied := make([]bool, mask)
	result := s.Identity()
	for j := windows - 1; j >= 0; j-- {
		if j != windows-1 {
			for i := uint(0); i < window; i++ {
				result = s.Op(result, result)
			}
		}
		for b := range buckets {
			occupied[b] = false
		}
		shift := uint(j) * window
		for i := 0; i < n; i++ {
			b := scalars[i].Representative() >> shift & mask
			if b == 0 {
				continue
			}
			if occupied[b-1] {
				buckets[b-1] = s.Op(buckets[b-1], hidings[i])
			} else {
				buckets[b-1] = hidings[i]
				occupied[b-1] = true
			}
		}
		running := s.Identity()
		windowSum := s.Identity()
		for b := int(mask) - 1; b >= 0; b-- {
			if occupied[b] {
				running = s.Op(running, buckets[b])
			}
			windowSum = s.Op(windowSum, running)
		}
		result = s.Op(result, windowSum)
	}
	return result
}
