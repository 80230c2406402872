package solvers

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(25, day25)
}

// day25 counts the lock/key pairs whose pin heights do not overlap.
func day25(input string) (string, error) {
	var locks, keys [][]int
	space := 0
	for _, block := range blocks(input) {
		rows := lines(block)
		if len(rows) < 2 {
			return "", fmt.Errorf("invalid schematic %q", block)
		}
		space = len(rows) - 2
		heights := make([]int, len(rows[0]))
		for _, row := range rows {
			if len(row) != len(heights) {
				return "", fmt.Errorf("invalid schematic %q", block)
			}
			for i := range row {
				if row[i] == '#' {
					heights[i]++
				}
			}
		}
		for i := range heights {
			heights[i]--
		}
		if strings.Trim(rows[0], "#") == "" {
			locks = append(locks, heights)
		} else {
			keys = append(keys, heights)
		}
	}
	nb := 0
	for _, lock := range locks {
	nextKey:
		for _, key := range keys {
			if len(key) != len(lock) {
				continue
			}
			for i := range lock {
				if lock[i]+key[i] > space {
					continue nextKey
				}
			}
			nb++
		}
	}
	return strconv.Itoa(nb), nil
}
