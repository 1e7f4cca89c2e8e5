package disjointset_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"dsu_tool/pkg/disjointset"
)

func identity[T comparable](v T) T { return v }

func TestToSnapshotShape(t *testing.T) {
	d := disjointset.New[string]()
	d.MakeSet("A")
	d.MakeSet("B")
	d.MakeSet("C")
	d.Union("A", "B")

	snap := disjointset.ToSnapshot(d, identity[string])

	// 元素按插入顺序定义下标
	assert.Equal(t, []string{"A", "B", "C"}, snap.Elements)
	assert.Equal(t, [][]int{{0, 1}, {2}}, snap.Sets)
}

func TestToSnapshotEmpty(t *testing.T) {
	d := disjointset.New[int]()
	snap := disjointset.ToSnapshot(d, identity[int])

	assert.Empty(t, snap.Elements)
	assert.Empty(t, snap.Sets)
}

// 往返之后分区必须等价：所有元素对的 Connected 结果前后一致
func TestRoundTripConnectivity(t *testing.T) {
	d := disjointset.New[int]()
	for i := 0; i < 9; i++ {
		d.MakeSet(i)
	}
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(4, 5)
	d.Union(7, 8)

	snap := disjointset.ToSnapshot(d, identity[int])
	rebuilt, err := disjointset.FromSnapshot(snap, identity[int])
	if err != nil {
		t.Fatalf("FromSnapshot failed: %v", err)
	}

	values := d.Values()
	assert.Equal(t, values, rebuilt.Values())
	for _, a := range values {
		for _, b := range values {
			if d.Connected(a, b) != rebuilt.Connected(a, b) {
				t.Errorf("Connected(%d,%d) mismatch after round trip", a, b)
			}
		}
	}
}

// encode/decode 由调用方决定线上的表示，这里把 int 序列化成字符串
func TestSnapshotCustomCodec(t *testing.T) {
	d := disjointset.New[int]()
	d.Union(10, 20)
	d.MakeSet(30)

	snap := disjointset.ToSnapshot(d, func(v int) string {
		return strconv.Itoa(v)
	})
	assert.Equal(t, []string{"10", "20", "30"}, snap.Elements)

	rebuilt, err := disjointset.FromSnapshot(snap, func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
	assert.NoError(t, err)
	assert.True(t, rebuilt.Connected(10, 20))
	assert.False(t, rebuilt.Connected(10, 30))
}

func TestFromSnapshotIndexOutOfRange(t *testing.T) {
	snap := disjointset.Snapshot[string]{
		Elements: []string{"A", "B"},
		Sets:     [][]int{{0, 2}},
	}
	_, err := disjointset.FromSnapshot(snap, identity[string])
	assert.Error(t, err)

	snap.Sets = [][]int{{-1}}
	_, err = disjointset.FromSnapshot(snap, identity[string])
	assert.Error(t, err)
}

func TestFromSnapshotDuplicateElements(t *testing.T) {
	snap := disjointset.Snapshot[string]{
		Elements: []string{"A", "A"},
		Sets:     [][]int{{0}, {1}},
	}
	_, err := disjointset.FromSnapshot(snap, identity[string])
	assert.Error(t, err)
}

func TestToJSONFromJSONRoundTrip(t *testing.T) {
	d := disjointset.New[string]()
	d.Union("A", "B")
	d.Union("B", "C")
	d.MakeSet("D")

	data, err := disjointset.ToJSON(d)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	rebuilt, err := disjointset.FromJSON[string](data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	assert.Equal(t, 4, rebuilt.Size())
	assert.Equal(t, 2, rebuilt.SetCount())
	assert.True(t, rebuilt.Connected("A", "C"))
	assert.False(t, rebuilt.Connected("A", "D"))
}

func TestFromJSONInvalidInput(t *testing.T) {
	_, err := disjointset.FromJSON[string]([]byte(`{"elements": [`))
	assert.Error(t, err)
}
