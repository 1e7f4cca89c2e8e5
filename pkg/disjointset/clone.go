package disjointset

import "github.com/mohae/deepcopy"

// Clone 返回连通性等价的深拷贝
// 元素值本身可能带引用类型字段，逐个过 deepcopy 防止引用穿透
// 拷贝经由快照重建，树形和秩不保证与原结构一致，分区保证一致
func (d *DisjointSet[T]) Clone() *DisjointSet[T] {
	snap := ToSnapshot(d, func(v T) T {
		return deepcopy.Copy(v).(T)
	})
	out, err := FromSnapshot(snap, func(v T) T { return v })
	if err != nil {
		// 快照来自一个合法结构，走到这里说明内部不变量被破坏
		panic(err)
	}
	return out
}
