package exercise

import "fmt"

// Part selects which half of a day's exercise to solve.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// ParsePart converts a command-line selector to a Part. Only the literal
// values "1" and "2" are accepted.
func ParsePart(s string) (Part, error) {
	switch s {
	case "1":
		return Part1, nil
	case "2":
		return Part2, nil
	default:
		return 0, fmt.Errorf("invalid part %q: must be 1 or 2", s)
	}
}

func (p Part) String() string {
	return fmt.Sprintf("%d", int(p))
}
