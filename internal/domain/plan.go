package domain

import "sort"

// SortChronological orders a day's actions by scheduled time, ascending.
// The sort is stable so same-minute actions keep their generation order.
func SortChronological(actions []Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Time.Before(actions[j].Time.Time)
	})
}
