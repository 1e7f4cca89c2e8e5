//  1. 基本用法
//     d := disjointset.New[string]()
//     d.MakeSet("A")
//     d.MakeSet("B")
//     d.Union("A", "B")
//     d.Connected("A", "B") // true
//
//  2. 隐式创建
//     d := disjointset.New[int]()
//     d.Union(1, 2) // 1、2 不存在也没关系，会被自动创建
//     d.Size()      // 2
//
//  3. 谓词合并（传递闭包语义）
//     d.MergeIf(func(a, b int) bool { return a%2 == b%2 })
//     // 奇数一组，偶数一组
//
//  4. 快照与重建
//     snap := disjointset.ToSnapshot(d, func(v int) int { return v })
//     d2, _ := disjointset.FromSnapshot(snap, func(v int) int { return v })
//     // d2 与 d 分区等价，树形不保证一致
package disjointset
