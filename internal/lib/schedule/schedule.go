// Package schedule classifies shows relative to a reference instant.
//
// A show starting exactly at the reference instant is upcoming. Every count
// and listing in the directory goes through IsUpcoming so the boundary is
// treated the same way everywhere.
package schedule

import (
	"sort"
	"time"
)

func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// Split partitions items into past and upcoming, each ordered by start time
// ascending. Items sharing a start time keep their input order.
func Split[T any](items []T, now time.Time, start func(T) time.Time) (past, upcoming []T) {
	past = make([]T, 0)
	upcoming = make([]T, 0)

	for _, item := range items {
		if IsUpcoming(start(item), now) {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}

	SortByStart(past, start)
	SortByStart(upcoming, start)

	return past, upcoming
}

func SortByStart[T any](items []T, start func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return start(items[i]).Before(start(items[j]))
	})
}
