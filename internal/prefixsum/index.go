package prefixsum

import (
	"fmt"
	"math/bits"
)

// Result is the answer of IndexOf: the entry owning an offset and the
// offset's distance from the start of that entry.
type Result struct {
	Index     int
	Remainder int
}

// Index is a cumulative-count index. The zero value is an empty index.
type Index struct {
	values []int
	tree   []int // 1-based Fenwick tree, len(values)+1 entries
	total  int
}

// New creates an index over a copy of values.
func New(values []int) *Index {
	x := &Index{values: make([]int, len(values))}
	copy(x.values, values)
	x.rebuild()
	return x
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return len(x.values)
}

// Value returns entry i.
func (x *Index) Value(i int) int {
	x.checkIndex(i)
	return x.values[i]
}

// Values returns a copy of all entries.
func (x *Index) Values() []int {
	out := make([]int, len(x.values))
	copy(out, x.values)
	return out
}

// TotalSum returns the sum of all entries.
func (x *Index) TotalSum() int {
	return x.total
}

// PrefixSum returns the inclusive sum of entries 0..i.
func (x *Index) PrefixSum(i int) int {
	x.checkIndex(i)
	sum := 0
	for j := i + 1; j > 0; j -= j & -j {
		sum += x.tree[j]
	}
	return sum
}

// IndexOf locates the entry containing offset: the result satisfies
// PrefixSum(Index-1) <= offset < PrefixSum(Index). Entries with value 0
// never own an offset. offset must be in [0, TotalSum()).
func (x *Index) IndexOf(offset int) Result {
	if offset < 0 || offset >= x.total {
		panic(fmt.Sprintf("prefixsum: offset %d out of range [0,%d)", offset, x.total))
	}

	n := len(x.values)
	pos := 0
	rem := offset
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		next := pos + step
		if next <= n && x.tree[next] <= rem {
			pos = next
			rem -= x.tree[next]
		}
	}
	return Result{Index: pos, Remainder: rem}
}

// SetValue replaces entry i. It returns false if the value was unchanged.
func (x *Index) SetValue(i, value int) bool {
	x.checkIndex(i)
	checkValue(value)

	delta := value - x.values[i]
	if delta == 0 {
		return false
	}
	x.values[i] = value
	x.total += delta
	for j := i + 1; j < len(x.tree); j += j & -j {
		x.tree[j] += delta
	}
	return true
}

// InsertValues inserts values before entry i. i may equal Len() to append.
func (x *Index) InsertValues(i int, values []int) {
	if i < 0 || i > len(x.values) {
		panic(fmt.Sprintf("prefixsum: insert index %d out of range [0,%d]", i, len(x.values)))
	}
	if len(values) == 0 {
		return
	}
	for _, v := range values {
		checkValue(v)
	}

	grown := make([]int, 0, len(x.values)+len(values))
	grown = append(grown, x.values[:i]...)
	grown = append(grown, values...)
	grown = append(grown, x.values[i:]...)
	x.values = grown
	x.rebuild()
}

// RemoveValues removes count entries starting at i.
func (x *Index) RemoveValues(i, count int) {
	if count < 0 || i < 0 || i+count > len(x.values) {
		panic(fmt.Sprintf("prefixsum: remove [%d,%d) out of range [0,%d)", i, i+count, len(x.values)))
	}
	if count == 0 {
		return
	}

	x.values = append(x.values[:i], x.values[i+count:]...)
	x.rebuild()
}

// rebuild recomputes the tree and total from values in O(n).
func (x *Index) rebuild() {
	n := len(x.values)
	if cap(x.tree) >= n+1 {
		x.tree = x.tree[:n+1]
		clear(x.tree)
	} else {
		x.tree = make([]int, n+1)
	}

	x.total = 0
	for i := 1; i <= n; i++ {
		v := x.values[i-1]
		checkValue(v)
		x.total += v
		x.tree[i] += v
		if parent := i + (i & -i); parent <= n {
			x.tree[parent] += x.tree[i]
		}
	}
}

func (x *Index) checkIndex(i int) {
	if i < 0 || i >= len(x.values) {
		panic(fmt.Sprintf("prefixsum: index %d out of range [0,%d)", i, len(x.values)))
	}
}

func checkValue(v int) {
	if v < 0 {
		panic(fmt.Sprintf("prefixsum: negative value %d", v))
	}
}
