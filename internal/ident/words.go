package ident

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kebab converts a Go identifier to the kebab-case spelling used for
// command-line names. Underscores only separate words.
//
//	Kebab("FirstName")  => "first-name"
//	Kebab("send_nowait") => "send-nowait"
//	Kebab("HTTPServer")  => "http-server"
func Kebab(s string) string {
	lower := cases.Lower(language.Und)

	var words []string
	for _, word := range SplitWords(s) {
		if strings.Trim(word, "_") == "" {
			continue
		}
		words = append(words, lower.String(word))
	}
	return strings.Join(words, "-")
}

// SplitWords splits an identifier into words. A word starts at a lower to
// upper case change, at the last capital of an acronym followed by a lower
// case letter, and wherever letters meet digits. Runs of underscores are words
// of their own.
//
//	SplitWords("JSONParser")  => ["JSON", "Parser"]
//	SplitWords("send_nowait") => ["send", "_", "nowait"]
//	SplitWords("iso8601")     => ["iso", "8601"]
func SplitWords(s string) []string {
	var words []string
	start := 0
	for i := 1; i < len(s); i++ {
		if startsWord(s, i) {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

type charClass int

const (
	otherChar charClass = iota
	lowerChar
	upperChar
	digitChar
	underscoreChar
)

func classOf(b byte) charClass {
	switch {
	case 'a' <= b && b <= 'z':
		return lowerChar
	case 'A' <= b && b <= 'Z':
		return upperChar
	case '0' <= b && b <= '9':
		return digitChar
	case b == '_':
		return underscoreChar
	}
	return otherChar
}

func (c charClass) letter() bool { return c == lowerChar || c == upperChar }

// startsWord reports whether a new word starts at s[i]. i must be positive.
func startsWord(s string, i int) bool {
	prev, curr := classOf(s[i-1]), classOf(s[i])
	switch {
	case prev == underscoreChar || curr == underscoreChar:
		return prev != curr
	case curr == upperChar:
		if prev == lowerChar || prev == digitChar {
			return true
		}
		return i+1 < len(s) && classOf(s[i+1]) == lowerChar
	case prev == digitChar:
		return curr.letter()
	case curr == digitChar:
		return prev.letter()
	}
	return false
}
