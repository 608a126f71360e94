package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"wxcli/internal/weather"
)

// ResolveCity resolves the city name to query. Multi-word names supplied as
// separate arguments are joined with single spaces ("New", "York" becomes
// "New York"). When no arguments were given the user is prompted on out and
// one line is read from in. An empty name after trimming is ErrMissingInput.
func ResolveCity(args []string, in io.Reader, out io.Writer) (string, error) {
	city := strings.TrimSpace(strings.Join(args, " "))
	if city != "" {
		return city, nil
	}

	if len(args) > 0 {
		// Arguments were given but were all blank; do not fall back to a prompt
		return "", weather.ErrMissingInput
	}

	fmt.Fprint(out, "Enter city name: ")
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", weather.ErrMissingInput
	}

	city = strings.TrimSpace(line)
	if city == "" {
		return "", weather.ErrMissingInput
	}
	return city, nil
}
