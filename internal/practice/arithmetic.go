package practice

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

func genCounting(rng *rand.Rand, skill string) Problem {
	hands := rng.IntN(10) + 1
	plural := ""
	if hands > 1 {
		plural = "s"
	}
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("How many fingers on %d hand%s? (5 fingers per hand)", hands, plural),
		Answer: strconv.Itoa(hands * 5),
		Scored: true,
	}
}

var numberWords = []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"}

func genNumberRecognition(rng *rand.Rand, skill string) Problem {
	n := rng.IntN(10) + 1
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("What is the number for %q?", numberWords[n-1]),
		Answer: strconv.Itoa(n),
		Scored: true,
	}
}

// Operand ranges: addition 1-20 each, subtraction minuend 10-29 with a
// smaller subtrahend, multiplication 1-10 each, division built from a
// 2-5 divisor and a 2-6 multiplier so the quotient is always whole.

func genAddition(rng *rand.Rand, skill string) Problem {
	a := rng.IntN(20) + 1
	b := rng.IntN(20) + 1
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("What is %d + %d?", a, b),
		Answer: strconv.Itoa(a + b),
		Scored: true,
	}
}

func genSubtraction(rng *rand.Rand, skill string) Problem {
	a := rng.IntN(20) + 10
	b := rng.IntN(a-1) + 1
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("What is %d - %d?", a, b),
		Answer: strconv.Itoa(a - b),
		Scored: true,
	}
}

func genMultiplication(rng *rand.Rand, skill string) Problem {
	a := rng.IntN(10) + 1
	b := rng.IntN(10) + 1
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("What is %d x %d?", a, b),
		Answer: strconv.Itoa(a * b),
		Scored: true,
	}
}

func genDivision(rng *rand.Rand, skill string) Problem {
	divisor := rng.IntN(4) + 2
	multiplier := rng.IntN(5) + 2
	dividend := divisor * multiplier
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("What is %d / %d?", dividend, divisor),
		Answer: strconv.Itoa(multiplier),
		Scored: true,
	}
}

func genWordAddition(rng *rand.Rand, skill string) Problem {
	a := rng.IntN(5) + 1
	b := rng.IntN(5) + 1
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("You have %d candies and get %d more. How many do you have in total?", a, b),
		Answer: strconv.Itoa(a + b),
		Scored: true,
	}
}

func genWordSubtraction(rng *rand.Rand, skill string) Problem {
	a := rng.IntN(10) + 5
	b := rng.IntN(a-1) + 1
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("You had %d cookies and ate %d. How many are left?", a, b),
		Answer: strconv.Itoa(a - b),
		Scored: true,
	}
}

func genWordMultiplication(rng *rand.Rand, skill string) Problem {
	bags := rng.IntN(3) + 2
	each := rng.IntN(3) + 2
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("There are %d bags with %d apples each. How many apples in total?", bags, each),
		Answer: strconv.Itoa(bags * each),
		Scored: true,
	}
}

func genWordDivision(rng *rand.Rand, skill string) Problem {
	friends := rng.IntN(2) + 2
	each := rng.IntN(4) + 2
	toys := friends * each
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("You have %d toys to share equally among %d friends. How many does each get?", toys, friends),
		Answer: strconv.Itoa(each),
		Scored: true,
	}
}
