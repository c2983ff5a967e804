// Package nav computes the ordering and neighbor relation used for
// cross-document navigation.
package nav

import (
	"sort"

	"github.com/lerenn/milestone-docs/pkg/tracker"
)

// Order sorts issues so every open issue precedes every closed one. The
// sort is stable: within each state the original fetch order is kept.
// The same ordering drives the milestone summary and the prev/next chain.
func Order(issues []tracker.Issue) []tracker.Issue {
	ordered := make([]tracker.Issue, len(issues))
	copy(ordered, issues)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].Closed() && ordered[j].Closed()
	})
	return ordered
}

// Neighbors returns the positional predecessor and successor of the
// element at index i in the ordered sequence. The first element has no
// predecessor and the last no successor.
func Neighbors(ordered []tracker.Issue, i int) (prev, next *tracker.Issue) {
	if i > 0 {
		prev = &ordered[i-1]
	}
	if i < len(ordered)-1 {
		next = &ordered[i+1]
	}
	return prev, next
}
