package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	log "github.com/sirupsen/logrus"
)

// hashSuffixLen is the length of "_h" followed by 16 hex digits.
const hashSuffixLen = 18

// shorten keeps names within maxLen bytes. A long name keeps its head and
// gets the hash of the full name appended, so different long names stay
// different and the same long name always shortens the same way.
//
// The head ends on a rune boundary and never inside a bracketed segment, so
// a valid name stays valid. It may therefore be shorter than maxLen.
func shorten(name string, maxLen int) string {
	if maxLen <= 0 || len(name) <= maxLen {
		return name
	}

	short := shortenHead(name, maxLen-hashSuffixLen) +
		fmt.Sprintf("_h%016x", xxhash.Sum64String(name))

	log.WithFields(log.Fields{
		"length": len(name),
		"limit":  maxLen,
	}).Debugf("shortened identifier to %s", short)

	return short
}

func shortenHead(name string, cut int) string {
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}

	head := name[:cut]

	open := strings.LastIndexByte(head, '[')
	if open >= 0 && strings.IndexByte(head[open:], ']') < 0 {
		head = head[:open]
	}

	return head
}

// indexMustNotBeNegative panics if a number that ends up in a name is
// negative. A minus sign would make "_-1_" read like a separator.
func indexMustNotBeNegative(what string, v int) {
	if v < 0 {
		log.Panicf("%s must not be negative, got %d", what, v)
	}
}

// IdentifierMustBeValid panics if a name cannot be used as a module or port
// name. A name must
// 1. not be empty,
// 2. not contain whitespace or dots,
// 3. have paired square brackets that do not nest.
func IdentifierMustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			log.Panicf("identifier %q is not valid: %v", name, r)
		}
	}()

	if name == "" {
		panic("identifier must not be empty")
	}

	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		panic("identifier must not contain whitespace")
	}

	if strings.Contains(name, ".") {
		panic("identifier must not contain .")
	}

	bracketMustMatch(name)
}

func bracketMustMatch(name string) {
	open := false

	for _, c := range name {
		switch c {
		case '[':
			if open {
				panic("identifier brackets must not nest")
			}

			open = true
		case ']':
			if !open {
				panic("identifier brackets must match")
			}

			open = false
		}
	}

	if open {
		panic("identifier brackets must match")
	}
}
