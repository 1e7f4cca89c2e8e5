package hashset

import (
	"fmt"
	"strings"
)

// HashSet 是基于 map 的泛型集合，零值不可用，通过 New 创建
// Values 的顺序不保证稳定，需要稳定顺序的调用方自己排序
type HashSet[T comparable] struct {
	items map[T]struct{}
}

// New 创建集合，可以带初始元素
func New[T comparable](values ...T) *HashSet[T] {
	s := &HashSet[T]{items: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

// Add 添加若干元素，重复添加无副作用
func (s *HashSet[T]) Add(values ...T) {
	for _, v := range values {
		s.items[v] = struct{}{}
	}
}

// Remove 删除元素，元素不存在返回 false
func (s *HashSet[T]) Remove(value T) bool {
	if _, ok := s.items[value]; !ok {
		return false
	}
	delete(s.items, value)
	return true
}

// Contains 判断元素是否在集合中
func (s *HashSet[T]) Contains(value T) bool {
	_, ok := s.items[value]
	return ok
}

// Len 集合大小
func (s *HashSet[T]) Len() int {
	return len(s.items)
}

// Values 返回全部元素（乱序）
func (s *HashSet[T]) Values() []T {
	out := make([]T, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	return out
}

// Equal 判断两个集合的成员是否完全一致
func (s *HashSet[T]) Equal(other *HashSet[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.items {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *HashSet[T]) String() string {
	parts := make([]string, 0, len(s.items))
	for v := range s.items {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
