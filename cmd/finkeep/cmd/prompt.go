// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptLine reads a single line of visible input.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a line with terminal echo disabled.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)

	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// confirm asks a yes/no question and defaults to no.
func confirm(question string) (bool, error) {
	answer, err := promptLine(question + " [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
