package disjointset

import (
	"dsu_tool/pkg/hashset"
)

// node 是森林中的一个节点
// parent 指向根的方向，根节点的 parent 指向自己
// rank 是以该节点为根的子树高度的上界，只用来决定合并方向，
// 路径压缩之后它不再是精确的高度，但上界性质一直成立
type node[T comparable] struct {
	value  T
	parent *node[T]
	rank   int
}

// DisjointSet 是值索引的泛型并查集，支持路径压缩和按秩合并
// nodes 是元素到节点的唯一事实来源
// order 记录元素的插入顺序：Go 的 map 遍历是乱序的，
// 枚举顺序、删除时的新根选择、快照的元素顺序都依赖它保证可复现
//
// 结构不支持多线程并发修改，Find/Connected/GetSet 这些看起来只读的
// 操作也会因为路径压缩改写共享状态，外部并发访问要自己加整体锁
type DisjointSet[T comparable] struct {
	nodes map[T]*node[T]
	order []T
}

// New 创建一个空的并查集
func New[T comparable]() *DisjointSet[T] {
	return &DisjointSet[T]{nodes: make(map[T]*node[T])}
}

// MakeSet 接纳一个新元素，自成一个单元素集合
// 元素已经存在时什么都不做（幂等）
func (d *DisjointSet[T]) MakeSet(value T) {
	if _, ok := d.nodes[value]; ok {
		return
	}
	n := &node[T]{value: value}
	n.parent = n
	d.nodes[value] = n
	d.order = append(d.order, value)
}

// Contains 判断元素是否存在
func (d *DisjointSet[T]) Contains(value T) bool {
	_, ok := d.nodes[value]
	return ok
}

// Find 返回元素所在集合的根元素（带路径压缩）
// 元素不存在时返回 (零值, false)，这是正常结果不是错误，
// 调用方经常用它来探测成员关系
// 注意：虽然语义上是查询，路径压缩会改写沿途节点的父指针
func (d *DisjointSet[T]) Find(value T) (T, bool) {
	n, ok := d.nodes[value]
	if !ok {
		var zero T
		return zero, false
	}
	return d.findNode(n).value, true
}

// findNode 先迭代走到根，再把沿途节点全部直接挂到根下面
// 根节点直接命中，O(1) 且无改写
// 步数超过元素总数说明父链不收敛，内部不变量已被破坏，直接 panic
func (d *DisjointSet[T]) findNode(n *node[T]) *node[T] {
	root := n
	for steps := 0; root.parent != root; steps++ {
		if steps > len(d.nodes) {
			panic("disjointset: 父链不收敛，内部不变量被破坏")
		}
		root = root.parent
	}
	for n != root {
		n, n.parent = n.parent, root
	}
	return root
}

// Union 合并两个元素所在的集合（按秩合并）
// 不存在的元素会被隐式创建，这是刻意行为不是错误路径
// 两个根秩相同时，固定把 b 的根挂到 a 的根下面并把 a 的根秩加一，
// 保证同一实现下结果可复现；对外不承诺最终代表是 a 还是 b 一侧
func (d *DisjointSet[T]) Union(a, b T) {
	d.MakeSet(a)
	d.MakeSet(b)
	ra := d.findNode(d.nodes[a])
	rb := d.findNode(d.nodes[b])
	if ra == rb {
		// 已经在同一个集合（也覆盖 a == b 的情况）
		return
	}

	switch {
	case ra.rank < rb.rank:
		ra.parent = rb
	case ra.rank > rb.rank:
		rb.parent = ra
	default:
		rb.parent = ra
		ra.rank++
	}
}

// Connected 判断两个元素是否在同一个集合
// 任意一个不存在就返回 false，不会隐式创建
// 经由 Find 解析，所以同样带路径压缩副作用
func (d *DisjointSet[T]) Connected(a, b T) bool {
	na, ok := d.nodes[a]
	if !ok {
		return false
	}
	nb, ok := d.nodes[b]
	if !ok {
		return false
	}
	return d.findNode(na) == d.findNode(nb)
}

// GetSet 返回与 value 同组的全部元素，value 不存在时返回空集合
// 这里没有维护 根→成员 的反向索引，是整表线性扫描：
// 维护反向索引意味着每次 Union/Remove 都要做额外簿记，
// 这是刻意的简单性换内存的取舍
func (d *DisjointSet[T]) GetSet(value T) *hashset.HashSet[T] {
	set := hashset.New[T]()
	n, ok := d.nodes[value]
	if !ok {
		return set
	}
	root := d.findNode(n)
	for _, v := range d.order {
		if d.findNode(d.nodes[v]) == root {
			set.Add(v)
		}
	}
	return set
}

// GetAllSets 把所有存活元素按根分组返回
// 组的顺序按每组最早插入的成员排，没有元素时返回空切片
func (d *DisjointSet[T]) GetAllSets() []*hashset.HashSet[T] {
	groups := make(map[*node[T]]*hashset.HashSet[T])
	sets := make([]*hashset.HashSet[T], 0)
	for _, v := range d.order {
		root := d.findNode(d.nodes[v])
		set, ok := groups[root]
		if !ok {
			set = hashset.New[T]()
			groups[root] = set
			sets = append(sets, set)
		}
		set.Add(v)
	}
	return sets
}

// Size 当前存活元素总数，O(1)
func (d *DisjointSet[T]) Size() int {
	return len(d.nodes)
}

// SetCount 当前不相交集合的个数
// 需要解析每个元素的根，成本和 GetAllSets 同级
func (d *DisjointSet[T]) SetCount() int {
	roots := make(map[*node[T]]struct{})
	for _, n := range d.nodes {
		roots[d.findNode(n)] = struct{}{}
	}
	return len(roots)
}

// SetSize 返回 value 所在集合的成员数，元素不存在时为 0
func (d *DisjointSet[T]) SetSize(value T) int {
	return d.GetSet(value).Len()
}

// Values 按插入顺序返回全部元素的拷贝
func (d *DisjointSet[T]) Values() []T {
	out := make([]T, len(d.order))
	copy(out, d.order)
	return out
}

// Roots 返回每个集合的代表元素，按各组最早插入成员的顺序排
func (d *DisjointSet[T]) Roots() []T {
	seen := make(map[*node[T]]struct{})
	var roots []T
	for _, v := range d.order {
		root := d.findNode(d.nodes[v])
		if _, ok := seen[root]; !ok {
			seen[root] = struct{}{}
			roots = append(roots, root.value)
		}
	}
	return roots
}

// Clear 清空整个结构
func (d *DisjointSet[T]) Clear() {
	d.nodes = make(map[T]*node[T])
	d.order = nil
}

// Remove 删除一个元素，元素不存在返回 false
// 先把同组所有成员压平到当前根上，压平之后除了根没有任何节点会被指向：
//   - 被删的是普通成员：直接摘掉即可
//   - 被删的是根且还有幸存成员：按插入顺序提升第一个幸存成员当新根，
//     其余成员改挂新根；新根继承旧根的 rank，其它成员的子树形状没变，
//     所以这个 rank 仍然是合法的高度上界
//
// 任何情况下都不会留下指向已删除节点的父指针
func (d *DisjointSet[T]) Remove(value T) bool {
	victim, ok := d.nodes[value]
	if !ok {
		return false
	}

	// 这一轮扫描的副作用就是把同组成员全部压平到 root 上
	root := d.findNode(victim)
	var members []*node[T]
	for _, v := range d.order {
		if d.findNode(d.nodes[v]) == root {
			members = append(members, d.nodes[v])
		}
	}

	delete(d.nodes, value)
	for i, v := range d.order {
		if v == value {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}

	if victim != root {
		return true
	}

	var newRoot *node[T]
	for _, m := range members {
		if m == victim {
			continue
		}
		if newRoot == nil {
			newRoot = m
			newRoot.parent = newRoot
			newRoot.rank = root.rank
			continue
		}
		m.parent = newRoot
	}
	return true
}

// MergeIf 对当前所有存活元素的每个无序对恰好评估一次谓词，成立就 Union
// 结果是“谓词成立”关系的传递闭包：a-b、b-c 都成立时 a、c 也会进同一组，
// 即使谓词对 (a,c) 不成立。拿它做距离聚类是不精确的，这是文档化的特性
// 而不是待修复的缺陷。代价是元素数的平方
func (d *DisjointSet[T]) MergeIf(pred func(a, b T) bool) {
	values := d.Values()
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if pred(values[i], values[j]) {
				d.Union(values[i], values[j])
			}
		}
	}
}
