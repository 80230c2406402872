// Package input finds and reads the puzzle input files.
//
// Inputs live in a single directory, one file per day, named after the day number
// with an optional extension: "24" and "24.txt" are both the input of day 24.
// Files whose name does not start with a number are ignored.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// A MissingInputError is returned when a day has no input file.
type MissingInputError struct {
	Day int
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("no input file for day %d", e.Day)
}

// A Catalog maps days to their input files.
type Catalog struct {
	dir   string
	files map[int]string
}

// Scan lists the input files of dir.
func Scan(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read input directory: %w", err)
	}
	c := &Catalog{dir: dir, files: make(map[int]string)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		prefix, _, _ := strings.Cut(name, ".")
		day, err := strconv.Atoi(prefix)
		if err != nil || day <= 0 {
			continue
		}
		if prev, ok := c.files[day]; ok {
			return nil, fmt.Errorf("two input files for day %d: %q and %q", day, prev, name)
		}
		c.files[day] = name
	}
	return c, nil
}

// Days returns the days that have an input file, in increasing order.
func (c *Catalog) Days() []int {
	days := make([]int, 0, len(c.files))
	for day := range c.files {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Latest returns the highest day with an input file.
func (c *Catalog) Latest() (int, error) {
	days := c.Days()
	if len(days) == 0 {
		return 0, fmt.Errorf("no input files in %q", c.dir)
	}
	return days[len(days)-1], nil
}

// Has returns whether day has an input file.
func (c *Catalog) Has(day int) bool {
	_, ok := c.files[day]
	return ok
}

// Path returns the path of the input file of day.
func (c *Catalog) Path(day int) (string, error) {
	name, ok := c.files[day]
	if !ok {
		return "", &MissingInputError{Day: day}
	}
	return filepath.Join(c.dir, name), nil
}

// Read returns the content of the input of day, with CRLF line endings turned into LF.
func (c *Catalog) Read(day int) (string, error) {
	path, err := c.Path(day)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read input of day %d: %w", day, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
