package solvers

import "strconv"

func init() {
	register(22, day22)
}

const pruneMod = 16777216

// nextSecret evolves a monkey's secret number once.
func nextSecret(s int) int {
	s = (s*64 ^ s) % pruneMod
	s = (s/32 ^ s) % pruneMod
	return (s*2048 ^ s) % pruneMod
}

// SecretSum returns the sum of the secret numbers of all buyers after the given number of rounds.
func SecretSum(input string, rounds int) (int, error) {
	sum := 0
	for _, line := range lines(input) {
		s, err := strconv.Atoi(line)
		if err != nil {
			return 0, err
		}
		for i := 0; i < rounds; i++ {
			s = nextSecret(s)
		}
		sum += s
	}
	return sum, nil
}

func day22(input string) (string, error) {
	n, err := SecretSum(input, 2000)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
