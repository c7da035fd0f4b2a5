package practice

import (
	"fmt"
	"math/rand/v2"
)

var spellingWords = []string{"cat", "dog", "run", "jump", "big", "red", "blue", "green"}

func genSpelling(rng *rand.Rand, skill string) Problem {
	word := spellingWords[rng.IntN(len(spellingWords))]
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("Spell the word: %q", word),
		Answer: word,
		Scored: true,
	}
}

// Only the easier half of the alphabet is drilled.
const alphabetRange = "ABCDEFGHIJKLM"

func genAlphabet(rng *rand.Rand, skill string) Problem {
	i := rng.IntN(len(alphabetRange) - 1)
	return Problem{
		Skill:  skill,
		Prompt: fmt.Sprintf("What letter comes after %q?", string(alphabetRange[i])),
		Answer: string(alphabetRange[i+1]),
		Scored: true,
	}
}

// qa is one prompt/answer pair in a fixed question bank.
type qa struct {
	q string
	a string
}

// bankGenerator returns a genFunc that picks uniformly from a bank.
func bankGenerator(bank []qa) genFunc {
	return func(rng *rand.Rand, skill string) Problem {
		item := bank[rng.IntN(len(bank))]
		return Problem{
			Skill:  skill,
			Prompt: item.q,
			Answer: item.a,
			Scored: true,
		}
	}
}

var vocabularyBank = []qa{
	{"What is a small, furry pet that says 'meow'?", "cat"},
	{"What is a large animal that says 'moo'?", "cow"},
	{"What do you use to write?", "pencil"},
}

var oppositesBank = []qa{
	{"What is the opposite of 'day'?", "night"},
	{"What is the opposite of 'open'?", "close"},
	{"What is the opposite of 'happy'?", "sad"},
}

var basicGrammarBank = []qa{
	{"Which word is a naming word (noun): 'jump' or 'book'?", "book"},
	{"Which word is an action word (verb): 'sleep' or 'chair'?", "sleep"},
	{"Fill in the blank: I ___ a boy. (am/is/are)", "am"},
}

var nounsBank = []qa{
	{"Is 'flower' a person, place, or thing?", "thing"},
	{"Is 'park' a person, place, or thing?", "place"},
}

var verbsBank = []qa{
	{"Which word shows action: 'sing' or 'song'?", "sing"},
	{"Which word tells what you do: 'read' or 'red'?", "read"},
}

var verbTensesBank = []qa{
	{"Complete: Today, I ___ (eat) an apple.", "eat"},
	{"Complete: Tomorrow, I ___ (play) outside.", "will play"},
}

var adjectivesBank = []qa{
	{"Which word describes a color: 'run' or 'green'?", "green"},
	{"Which word describes how something feels: 'soft' or 'sleep'?", "soft"},
}

var adverbsBank = []qa{
	{"Which word tells 'how' you do something: 'loud' or 'loudly'?", "loudly"},
	{"He walks ___. (Choose the word that tells how: quick/quickly)", "quickly"},
}

var sentenceCompletionBank = []qa{
	{"The cat sat ___ the mat. (on/in)", "on"},
	{"I like ___ play. (to/too)", "to"},
}

var sentenceExpansionBank = []qa{
	{"Add a describing word: The ___ dog ran. (big/runs)", "big"},
	{"Add a word that tells how: She sings ___.", "loudly"},
}

var intermediateGrammarBank = []qa{
	{"Which is correct: 'He go' or 'He goes'?", "He goes"},
	{"What is the plural of 'cat'?", "cats"},
}

var phonicsBank = []qa{
	{"What sound does 'a' make in 'apple'?", "ah"},
	{"What sound does 'b' make in 'ball'?", "buh"},
}
