package solvers

import (
	"fmt"
	"strconv"

	"github.com/GeraldLeeDoesThings/advent-of-code-2024/datalog"
)

func init() {
	register(5, day5)
}

// An update is violated when a page is printed before one it must follow.
const orderingRules = `
Decl order(Before, After).
Decl printed(Update, First, Then).
violated(U) :- printed(U, A, B), order(B, A).
`

// day5 sums the middle page of the updates that respect the ordering rules.
func day5(input string) (string, error) {
	parts := blocks(input)
	if len(parts) != 2 {
		return "", fmt.Errorf("expected rules and updates, got %d sections", len(parts))
	}
	e, err := datalog.New(orderingRules)
	if err != nil {
		return "", err
	}
	for _, line := range lines(parts[0]) {
		rule, err := ints(line, "|")
		if err != nil {
			return "", err
		}
		if len(rule) != 2 {
			return "", fmt.Errorf("invalid rule %q", line)
		}
		e.Add("order", int64(rule[0]), int64(rule[1]))
	}
	var updates [][]int
	for u, line := range lines(parts[1]) {
		pages, err := ints(line, ",")
		if err != nil {
			return "", err
		}
		for i := range pages {
			for j := i + 1; j < len(pages); j++ {
				e.Add("printed", int64(u), int64(pages[i]), int64(pages[j]))
			}
		}
		updates = append(updates, pages)
	}
	if err := e.Eval(); err != nil {
		return "", err
	}
	violated, err := e.Query("violated", 1)
	if err != nil {
		return "", err
	}
	bad := make(map[int]bool, len(violated))
	for _, v := range violated {
		bad[int(v[0])] = true
	}
	sum := 0
	for u, pages := range updates {
		if !bad[u] && len(pages) > 0 {
			sum += pages[len(pages)/2]
		}
	}
	return strconv.Itoa(sum), nil
}
