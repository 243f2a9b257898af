// Package exercise implements the daily puzzle computations.
//
// Day 1 (https://adventofcode.com/2024/day/1) works over a two-column
// integer table: part 1 measures the total distance between the
// independently sorted columns, part 2 scores how similar the columns are
// by value frequency.
package exercise

import (
	"fmt"
	"sort"

	"github.com/tteague19/advent-of-code-2024/pkg/dataset"
)

// Result is the outcome of solving one part of a day's exercise.
type Result struct {
	Day    int    `json:"day"`
	Part   Part   `json:"part"`
	Label  string `json:"label"` // "total distance" or "similarity score"
	Answer int64  `json:"answer"`
}

// TotalDistance sorts each column ascending, pairs the sorted sequences by
// position, and sums the absolute differences. The columns are sorted
// independently of the original row pairing. An empty dataset yields 0.
func TotalDistance(d *dataset.Dataset) int64 {
	left := make([]int64, len(d.Left))
	right := make([]int64, len(d.Right))
	copy(left, d.Left)
	copy(right, d.Right)

	sort.Slice(left, func(i, j int) bool { return left[i] < left[j] })
	sort.Slice(right, func(i, j int) bool { return right[i] < right[j] })

	var total int64
	for i := range left {
		diff := left[i] - right[i]
		if diff < 0 {
			diff = -diff
		}
		total += diff
	}
	return total
}

// SimilarityScore counts how often each value occurs in the right column,
// then sums left-column values weighted by their right-column frequency.
// Duplicates in the left column contribute once per occurrence. An empty
// dataset yields 0.
func SimilarityScore(d *dataset.Dataset) int64 {
	counts := make(map[int64]int64, len(d.Right))
	for _, v := range d.Right {
		counts[v]++
	}

	var score int64
	for _, v := range d.Left {
		score += v * counts[v]
	}
	return score
}

// Solve computes the selected metric for day 1. The default branch is
// unreachable when the selector came through ParsePart, but an unknown
// part still gets a clear error rather than a silent zero.
func Solve(d *dataset.Dataset, part Part) (Result, error) {
	switch part {
	case Part1:
		return Result{Day: 1, Part: part, Label: "total distance", Answer: TotalDistance(d)}, nil
	case Part2:
		return Result{Day: 1, Part: part, Label: "similarity score", Answer: SimilarityScore(d)}, nil
	default:
		return Result{}, fmt.Errorf("the exercise only has two parts, got part %d", int(part))
	}
}
