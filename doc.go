// Package matcache memoizes the inverse of a single mutable matrix.
//
// 🚀 What is matcache?
//
//	A small, deterministic caching primitive built from two pieces:
//		• Holder – owns the current matrix and its (possibly absent) cached inverse
//		• Inverse – the compute-or-fetch accessor: first call computes and stores,
//		  later calls return the stored value without recomputation
//
// Replacing the held matrix via SetMatrix atomically discards the cached
// inverse, so a stale inverse is never observable. A failed inversion leaves
// the cache empty; the next call retries.
//
// ✨ Why choose matcache?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, the linear algebra lives in the matrix subpackage
//   - Extensible – inject your own inverter hook or logger at construction
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 1}})
//	h := matcache.New(m)
//	inv, err := matcache.Inverse(h) // computes and caches
//	inv, err = matcache.Inverse(h)  // cache hit: logged notice, no recomputation
//
// Concurrency: matcache is intended for single-owner, single-goroutine use and
// performs no locking. Two goroutines racing through Inverse would both observe
// an empty cache and both compute: wasted work, equal stored values, no
// corruption. Wrap the holder in your own mutex if you need more.
package matcache
