package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

var (
	stdinReader *bufio.Reader
	stdinSource io.Reader
)

// readLine returns the next line of Stdin without its line break and
// surrounding spaces. The buffer is rebuilt when Stdin is swapped.
func readLine() (string, error) {
	if stdinReader == nil || stdinSource != Stdin {
		stdinReader = bufio.NewReader(Stdin)
		stdinSource = Stdin
	}
	line, err := stdinReader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

// PromptString asks until a non-blank line is entered. Inner spaces are kept.
func PromptString(message string) string {
	for {
		Println(message)
		input, err := readLine()
		if err != nil {
			panic(err)
		}
		if input == "" {
			Println("Invalid text input")
			continue
		}
		return input
	}
}

func promptInteger(message string) int {
	for {
		input, err := strconv.Atoi(PromptString(message))
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return input
	}
}

func promptUppercaseString(message string) string {
	input := PromptString(message)
	return strings.ToUpper(input)
}

// PromptCardSelection labels cards A, B, C and so on, in order, and returns
// the one the user picks.
func PromptCardSelection(cards []card.Card) card.Card {
	runeSequence := runeSequence{}
	cardOptions := make(map[string]card.Card, len(cards))
	cardSelectionLines := []string{"Select a card to play:"}
	for _, c := range cards {
		label := string(runeSequence.next())
		cardOptions[label] = c
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", c, label))
	}
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel := promptUppercaseString(cardSelectionMessage)
		selectedCard, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedCard
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		input := promptInteger(message)
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input
	}
}
