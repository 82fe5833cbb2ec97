// Package main is the entry point for the textaug CLI.
package main

import "textaug.dev/pkg/textaug/cmd"

func main() {
	cmd.Execute()
}
