// Package budget defines bot size categories and the expected duration budget for each.
package budget

import (
	"fmt"
	"strings"
)

// BotSize is a bot capacity category. Values are canonical uppercase names.
type BotSize string

const (
	Small     BotSize = "SMALL"
	Medium    BotSize = "MEDIUM"
	Large     BotSize = "LARGE"
	XtraLarge BotSize = "XTRALARGE"
	Ultimate  BotSize = "ULTIMATE"
)

// Sizes returns every bot size, smallest first.
func Sizes() []BotSize {
	return []BotSize{Small, Medium, Large, XtraLarge, Ultimate}
}

// ParseBotSize canonicalizes a bot size name. Case is ignored.
func ParseBotSize(name string) (BotSize, error) {
	size := BotSize(strings.ToUpper(strings.TrimSpace(name)))
	if !size.Valid() {
		return "", fmt.Errorf("unknown bot size %q", name)
	}
	return size, nil
}

// Valid reports whether s is one of the known bot sizes.
func (s BotSize) Valid() bool {
	switch s {
	case Small, Medium, Large, XtraLarge, Ultimate:
		return true
	default:
		return false
	}
}

func (s BotSize) String() string {
	return string(s)
}
