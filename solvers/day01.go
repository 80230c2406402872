package solvers

import (
	"strconv"
	"strings"
)

func init() {
	register(1, day1)
}

// day1 computes the similarity score of two location lists: each number of the
// left list, times the number of times it appears in the right list.
func day1(input string) (string, error) {
	var left []int
	right := make(map[int]int)
	for _, line := range lines(input) {
		if len(strings.Fields(line)) != 2 {
			break
		}
		pair, err := ints(line, "")
		if err != nil {
			return "", err
		}
		left = append(left, pair[0])
		right[pair[1]]++
	}
	score := 0
	for _, n := range left {
		score += n * right[n]
	}
	return strconv.Itoa(score), nil
}
