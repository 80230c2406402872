package solvers

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(19, day19)
}

// day19 counts the designs that can be made by lining up available towel patterns.
func day19(input string) (string, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return "", fmt.Errorf("expected patterns and designs, got %d sections", len(parts))
	}
	patterns := strings.Split(strings.TrimSpace(parts[0]), ", ")
	nb := 0
	for _, design := range lines(parts[1]) {
		memo := make(map[int]bool)
		var possible func(i int) bool
		possible = func(i int) bool {
			if i == len(design) {
				return true
			}
			if ok, found := memo[i]; found {
				return ok
			}
			ok := false
			for _, p := range patterns {
				if strings.HasPrefix(design[i:], p) && possible(i+len(p)) {
					ok = true
					break
				}
			}
			memo[i] = ok
			return ok
		}
		if possible(0) {
			nb++
		}
	}
	return strconv.Itoa(nb), nil
}
