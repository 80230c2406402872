package solvers

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(7, day7)
}

// concat returns the number made of the digits of a followed by those of b.
func concat(a, b int) int {
	for m := b; ; m /= 10 {
		a *= 10
		if m < 10 {
			break
		}
	}
	return a + b
}

// calibrates tells whether acc, combined left to right with nums using +, * or
// concatenation, can give target.
func calibrates(target, acc int, nums []int) bool {
	if acc > target {
		return false
	}
	if len(nums) == 0 {
		return acc == target
	}
	n, rest := nums[0], nums[1:]
	return calibrates(target, acc+n, rest) ||
		calibrates(target, acc*n, rest) ||
		calibrates(target, concat(acc, n), rest)
}

func day7(input string) (string, error) {
	sum := 0
	for _, line := range lines(input) {
		lhs, rhs, ok := strings.Cut(line, ":")
		if !ok {
			return "", fmt.Errorf("invalid equation %q", line)
		}
		target, err := strconv.Atoi(lhs)
		if err != nil {
			return "", fmt.Errorf("invalid equation %q: %w", line, err)
		}
		nums, err := ints(rhs, "")
		if err != nil {
			return "", err
		}
		if len(nums) > 0 && calibrates(target, nums[0], nums[1:]) {
			sum += target
		}
	}
	return strconv.Itoa(sum), nil
}
