package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var scanner = bufio.NewScanner(os.Stdin)

// PromptFolderURL asks for a Drive folder URL or ID on stdin. An empty read
// (EOF, blank line) returns "".
func PromptFolderURL(last string) string {
	if last != "" {
		fmt.Printf("Drive folder URL or ID [%s]: ", last)
	} else {
		fmt.Print("Drive folder URL or ID: ")
	}
	if !scanner.Scan() {
		return ""
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return last
	}
	return text
}
