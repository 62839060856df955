package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "otpmig",
		Short: "Decode authenticator account-migration exports",
	}
	root.AddCommand(decodeCmd(), inspectCmd())
	return root.Execute()
}

// promptURL asks for one export URL on stderr and reads it from stdin,
// for users pasting a URL instead of passing arguments.
func promptURL() (string, error) {
	fmt.Fprint(os.Stderr, "otpauth-migration URL: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading URL: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no URL given")
	}
	return line, nil
}
