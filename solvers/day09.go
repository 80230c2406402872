package solvers

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(9, day9)
}

// day9 moves file blocks, one at a time, from the end of the disk to the leftmost
// free block, and returns the resulting filesystem checksum.
func day9(input string) (string, error) {
	var disk []int // File id of each block, -1 when free.
	for i, c := range strings.TrimSpace(input) {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("invalid disk map digit %q", c)
		}
		id := -1
		if i%2 == 0 {
			id = i / 2
		}
		for n := int(c - '0'); n > 0; n-- {
			disk = append(disk, id)
		}
	}
	free, last := 0, len(disk)-1
	for {
		for free < len(disk) && disk[free] >= 0 {
			free++
		}
		for last >= 0 && disk[last] < 0 {
			last--
		}
		if free >= last {
			break
		}
		disk[free], disk[last] = disk[last], -1
	}
	sum := 0
	for pos, id := range disk {
		if id >= 0 {
			sum += pos * id
		}
	}
	return strconv.Itoa(sum), nil
}
