package algorithm

import (
	"bufio"
	"fmt"
	"hashAnalysisBackend/internal/core/domain"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// CommonPasswords is the base list the built-in wordlist is expanded from.
// Entries are kept as-is, including the repeated "michelle".
var CommonPasswords = []string{
	"password", "123456", "password123", "admin", "qwerty", "letmein", "welcome",
	"monkey", "dragon", "master", "shadow", "football", "baseball", "sunshine",
	"iloveyou", "trustno1", "hello", "freedom", "whatever", "princess", "maggie",
	"jordan", "summer", "sophie", "hellow", "michelle", "daniel", "starwars",
	"computer", "michelle", "tiger", "1234", "a1b2c3", "foobar", "buster",
	"thomas", "robert", "batman", "abcdef", "ncc1701", "coffee", "scooter",
	"charlie", "orange", "apple", "yankee", "braves", "newyork", "jackson",
	"florida", "sarah", "pepsi", "nicholas", "1qaz2wsx", "zxcvbnm", "asdfgh",
}

type variantRule func(word string) string

// variantRules run in this order for every base word.
var variantRules = []variantRule{
	func(w string) string { return w },
	strings.ToUpper,
	capitalize,
	func(w string) string { return w + "1" },
	func(w string) string { return w + "123" },
	func(w string) string { return w + "!" },
	func(w string) string { return w + "@" },
	func(w string) string { return "1" + w },
	func(w string) string { return "123" + w },
	func(w string) string { return w + "2024" },
	func(w string) string { return w + "2023" },
	func(w string) string { return w + "2025" },
}

// VariantsPerWord is the number of candidates Expand emits for each base word.
var VariantsPerWord = len(variantRules)

// Expand builds the candidate sequence for base. Order follows base, then variantRules.
// Duplicates are kept.
func Expand(base []string) []string {
	candidates := make([]string, 0, len(base)*len(variantRules))
	for _, word := range base {
		for _, rule := range variantRules {
			candidates = append(candidates, rule(word))
		}
	}
	return candidates
}

// capitalize upper-cases the first character and leaves the rest untouched.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// BuiltinWordlist is the expansion of CommonPasswords, built once and shared read-only.
// Callers must not modify the returned slice.
var BuiltinWordlist = sync.OnceValue(func() []string {
	return Expand(CommonPasswords)
})

// LoadWordlist reads one candidate per line, skipping blank lines.
func LoadWordlist(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidWordlist, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidWordlist, err)
	}
	return words, nil
}
