package solvers

import "strconv"

func init() {
	register(2, day2)
}

// safe tells whether levels strictly increase or decrease, by 1 to 3 at each step.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	sign := 1
	if levels[1] < levels[0] {
		sign = -1
	}
	for i := 1; i < len(levels); i++ {
		d := (levels[i] - levels[i-1]) * sign
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

func day2(input string) (string, error) {
	nb := 0
	for _, line := range lines(input) {
		levels, err := ints(line, "")
		if err != nil {
			return "", err
		}
		if safe(levels) {
			nb++
		}
	}
	return strconv.Itoa(nb), nil
}
