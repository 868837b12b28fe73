package parse

import "github.com/google/shlex"

// Split tokenizes a raw command line into an argument vector using
// shell-style quoting rules.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
