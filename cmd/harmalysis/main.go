// Command harmalysis is a REPL that reads Roman-numeral analysis queries
// from stdin, one per line, and prints the resolved key, chord, inversion,
// label, and harmonic function for each. It stops at EOF.
//
// Each line is parsed against whatever key the previous line established
// (C major at startup); a line can override that by starting with its own
// key prefix, e.g. "Bb:V7".
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/napulen/harmalysis"
)

func main() {
	analyzer := harmalysis.NewAnalyzer()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := scanner.Text()
		if query == "" {
			continue
		}
		h, err := analyzer.ParseRoman(query)
		if err != nil {
			fmt.Println("Invalid entry. Try again.")
			continue
		}
		label, err := h.Chord.Label()
		if err != nil {
			label = "(" + err.Error() + ")"
		}
		fmt.Println("\tMain key: " + h.MainKey.String())
		fmt.Println("\tReference key: " + h.ReferenceKey.String())
		fmt.Println("\tIntervallic construction: " + h.Chord.String())
		fmt.Printf("\tInversion: %d\n", h.Chord.Inversion)
		fmt.Println("\tChord label: " + label)
		fmt.Println("\tDefault function: " + h.Chord.DefaultFunction.String())
		fmt.Println("\tContextual function: " + h.Chord.ContextualFunction.String())
	}
}
