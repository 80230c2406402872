package solvers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(17, day17)
}

// A computer is a 3-bit machine with three unbounded registers.
type computer struct {
	a, b, c int
	program []int
}

func parseComputer(input string) (*computer, error) {
	cpu := &computer{}
	for _, line := range lines(input) {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(val)
		var err error
		switch key {
		case "Register A":
			cpu.a, err = strconv.Atoi(val)
		case "Register B":
			cpu.b, err = strconv.Atoi(val)
		case "Register C":
			cpu.c, err = strconv.Atoi(val)
		case "Program":
			cpu.program, err = ints(val, ",")
		default:
			err = fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(cpu.program) == 0 {
		return nil, errors.New("no program")
	}
	for i, v := range cpu.program {
		if v < 0 || v > 7 {
			return nil, fmt.Errorf("program value %d at %d is not a 3-bit number", v, i)
		}
	}
	return cpu, nil
}

func (cpu *computer) combo(op int) (int, error) {
	switch {
	case op < 4:
		return op, nil
	case op == 4:
		return cpu.a, nil
	case op == 5:
		return cpu.b, nil
	case op == 6:
		return cpu.c, nil
	default:
		return 0, fmt.Errorf("invalid combo operand %d", op)
	}
}

// maxSteps bounds the number of instructions a program may execute.
const maxSteps = 10000000

// run executes the program until it halts, and returns its output.
func (cpu *computer) run() ([]int, error) {
	var out []int
	for ip, steps := 0, 0; ip+1 < len(cpu.program); steps++ {
		if steps == maxSteps {
			return nil, errors.New("program does not halt")
		}
		opcode, op := cpu.program[ip], cpu.program[ip+1]
		ip += 2
		var val int
		if opcode != 1 && opcode != 3 && opcode != 4 {
			var err error
			if val, err = cpu.combo(op); err != nil {
				return nil, err
			}
			if val < 0 {
				return nil, fmt.Errorf("negative operand %d at %d", val, ip-2)
			}
		}
		switch opcode {
		case 0: // adv
			cpu.a >>= val
		case 1: // bxl
			cpu.b ^= op
		case 2: // bst
			cpu.b = val % 8
		case 3: // jnz
			if cpu.a != 0 {
				ip = op
			}
		case 4: // bxc
			cpu.b ^= cpu.c
		case 5: // out
			out = append(out, val%8)
		case 6: // bdv
			cpu.b = cpu.a >> val
		case 7: // cdv
			cpu.c = cpu.a >> val
		default:
			return nil, fmt.Errorf("invalid opcode %d", opcode)
		}
	}
	return out, nil
}

func day17(input string) (string, error) {
	cpu, err := parseComputer(input)
	if err != nil {
		return "", err
	}
	out, err := cpu.run()
	if err != nil {
		return "", err
	}
	strs := make([]string, len(out))
	for i, v := range out {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ","), nil
}
