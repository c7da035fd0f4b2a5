// Package practice generates typed drill problems per skill. Problems are
// procedural and seedable; answers are checked by normalized string
// comparison.
package practice

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Problem is one generated drill question.
type Problem struct {
	Skill  string
	Prompt string
	Answer string

	// Scored is false for sentinel problems: skills with no generator
	// produce a pointer back to lessons instead of a gradable question,
	// and those never affect proficiency or points.
	Scored bool
}

// Generator produces problems for known skills. The zero value is not
// usable; construct with New.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator. A nil source seeds from the clock; tests pass
// a fixed source for reproducible problems.
func New(src rand.Source) *Generator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now^0x9e3779b97f4a7c15)
	}
	return &Generator{rng: rand.New(src)}
}

// Problem generates a problem for the given skill. Unknown skills yield
// an unscored sentinel.
func (g *Generator) Problem(skill string) Problem {
	if gen, ok := generators[skill]; ok {
		return gen(g.rng, skill)
	}
	return Problem{
		Skill:  skill,
		Prompt: "Practice for \"" + strings.ReplaceAll(skill, "_", " ") + "\" is best done through lessons and quizzes. Head back to the dashboard to keep learning this one!",
		Answer: "N/A",
		Scored: false,
	}
}

// PickSkill returns a random skill from the list.
func (g *Generator) PickSkill(skills []string) string {
	return skills[g.rng.IntN(len(skills))]
}

// Knows reports whether a skill has a real generator.
func Knows(skill string) bool {
	_, ok := generators[skill]
	return ok
}

// CheckAnswer compares the learner's input against the problem's answer.
// Whitespace is trimmed and comparison is case-insensitive. Unscored
// problems are never correct.
func CheckAnswer(p Problem, input string) bool {
	if !p.Scored {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(p.Answer))
}

// genFunc builds a problem for one skill.
type genFunc func(rng *rand.Rand, skill string) Problem

// generators maps each practicable skill to its generator. Skills missing
// here fall back to the sentinel in Problem.
var generators = map[string]genFunc{
	"counting_1_10":                genCounting,
	"number_recognition":           genNumberRecognition,
	"addition_basic":               genAddition,
	"subtraction_basic":            genSubtraction,
	"multiplication_basic":         genMultiplication,
	"division_basic":               genDivision,
	"word_problems_addition":       genWordAddition,
	"word_problems_subtraction":    genWordSubtraction,
	"word_problems_multiplication": genWordMultiplication,
	"word_problems_division":       genWordDivision,
	"spelling_basic":               genSpelling,
	"alphabet_recognition":         genAlphabet,
	"basic_vocabulary":             bankGenerator(vocabularyBank),
	"opposites":                    bankGenerator(oppositesBank),
	"basic_grammar":                bankGenerator(basicGrammarBank),
	"nouns":                        bankGenerator(nounsBank),
	"verbs":                        bankGenerator(verbsBank),
	"verb_tenses":                  bankGenerator(verbTensesBank),
	"adjectives":                   bankGenerator(adjectivesBank),
	"adverbs":                      bankGenerator(adverbsBank),
	"sentence_completion":          bankGenerator(sentenceCompletionBank),
	"sentence_expansion":           bankGenerator(sentenceExpansionBank),
	"grammar_intermediate":         bankGenerator(intermediateGrammarBank),
	"phonics_basic":                bankGenerator(phonicsBank),
}
