package solvers

import "strconv"

func init() {
	register(11, day11)
}

type stone struct {
	mark   int
	blinks int
}

// blink returns the stones a stone turns into after one blink.
func blink(mark int) []int {
	if mark == 0 {
		return []int{1}
	}
	s := strconv.Itoa(mark)
	if len(s)%2 == 0 {
		l, _ := strconv.Atoi(s[:len(s)/2])
		r, _ := strconv.Atoi(s[len(s)/2:])
		return []int{l, r}
	}
	return []int{mark * 2024}
}

// CountStones returns the number of stones after the given number of blinks.
func CountStones(marks []int, blinks int) int {
	memo := make(map[stone]int)
	var count func(st stone) int
	count = func(st stone) int {
		if st.blinks == 0 {
			return 1
		}
		if n, ok := memo[st]; ok {
			return n
		}
		n := 0
		for _, m := range blink(st.mark) {
			n += count(stone{m, st.blinks - 1})
		}
		memo[st] = n
		return n
	}
	total := 0
	for _, m := range marks {
		total += count(stone{m, blinks})
	}
	return total
}

func day11(input string) (string, error) {
	marks, err := ints(input, "")
	if err != nil {
		return "", err
	}
	return strconv.Itoa(CountStones(marks, 25)), nil
}
