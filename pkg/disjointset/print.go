package disjointset

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// PrintForest 输出父指针森林的层级结构，主要用于调试和测试观察
// 根节点附带 rank，同一层的子节点按 format 结果排序，保证输出稳定
func (d *DisjointSet[T]) PrintForest(format func(T) string) string {
	children := make(map[*node[T]][]*node[T])
	var roots []*node[T]
	for _, v := range d.order {
		n := d.nodes[v]
		if n.parent == n {
			roots = append(roots, n)
		} else {
			children[n.parent] = append(children[n.parent], n)
		}
	}

	var sb strings.Builder
	var walk func(n *node[T], depth int)
	walk = func(n *node[T], depth int) {
		indent := strings.Repeat("  ", depth)
		if depth == 0 {
			sb.WriteString(fmt.Sprintf("%s%s(r=%d)\n", indent, format(n.value), n.rank))
		} else {
			sb.WriteString(fmt.Sprintf("%s%s\n", indent, format(n.value)))
		}
		kids := children[n]
		sort.Slice(kids, func(i, j int) bool {
			return format(kids[i].value) < format(kids[j].value)
		})
		for _, c := range kids {
			walk(c, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return sb.String()
}

// SortedSets 在元素本身可排序时返回稳定排序的分组视图：
// 组内元素升序，组间按各组最小元素升序，便于断言和打印
func SortedSets[T constraints.Ordered](d *DisjointSet[T]) [][]T {
	out := make([][]T, 0)
	for _, set := range d.GetAllSets() {
		members := set.Values()
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
