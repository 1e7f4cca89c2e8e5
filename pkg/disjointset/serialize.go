package disjointset

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Snapshot 是结构的线格式：elements 的顺序定义下标，
// sets 里每个内层数组是一个集合的成员下标
// 两个键固定成对出现，没有版本字段，消费方按一对匹配的数据处理
type Snapshot[S any] struct {
	Elements []S     `json:"elements"`
	Sets     [][]int `json:"sets"`
}

// ToSnapshot 导出当前结构，encode 负责把元素转换成可序列化的表示
// 元素按插入顺序排；非基本类型的编解码是调用方的责任，
// 这里只搬运不透明的序列化值和下标
// Go 的方法不能引入新的类型参数，所以序列化这一对做成包级函数
func ToSnapshot[T comparable, S any](d *DisjointSet[T], encode func(T) S) Snapshot[S] {
	values := d.Values()
	index := make(map[T]int, len(values))
	elements := make([]S, len(values))
	for i, v := range values {
		index[v] = i
		elements[i] = encode(v)
	}

	sets := make([][]int, 0)
	for _, set := range d.GetAllSets() {
		group := make([]int, 0, set.Len())
		// 组内下标按插入顺序排，保证输出稳定
		for _, v := range values {
			if set.Contains(v) {
				group = append(group, index[v])
			}
		}
		sets = append(sets, group)
	}
	return Snapshot[S]{Elements: elements, Sets: sets}
}

// FromSnapshot 从快照重建一个全新的结构：
// 每个元素先解码成单元素集合，再把每组的所有成员和本组第一个成员合并
// 往返之后分区等价（同样的分组、同样的成员），树形、根和秩不保证一致
//
// 畸形输入属于调用方的编程错误，会报错：下标越界、解码后元素重复
func FromSnapshot[T comparable, S any](snap Snapshot[S], decode func(S) T) (*DisjointSet[T], error) {
	d := New[T]()
	for i, raw := range snap.Elements {
		v := decode(raw)
		if d.Contains(v) {
			return nil, fmt.Errorf("disjointset: elements[%d] 解码后元素重复", i)
		}
		d.MakeSet(v)
	}

	values := d.Values()
	for gi, group := range snap.Sets {
		for mi, idx := range group {
			if idx < 0 || idx >= len(values) {
				return nil, fmt.Errorf(
					"disjointset: sets[%d][%d] 下标 %d 超出 elements 范围", gi, mi, idx)
			}
			if mi > 0 {
				d.Union(values[group[0]], values[idx])
			}
		}
	}
	return d, nil
}

// ToJSON 把结构序列化成 JSON 字节串，要求 T 自身能被 encoding/json 处理
func ToJSON[T comparable](d *DisjointSet[T]) ([]byte, error) {
	return json.Marshal(ToSnapshot(d, func(v T) T { return v }))
}

// FromJSON 从 JSON 字节串重建，先校验再解码
func FromJSON[T comparable](data []byte) (*DisjointSet[T], error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("disjointset: 输入不是有效的 JSON")
	}
	var snap Snapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return FromSnapshot(snap, func(v T) T { return v })
}
