package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadSite indicates a site token that is not a "row,col" or "row col" pair of integers.
var ErrBadSite = errors.New("cli: malformed site")

// Site is a 1-based (row, col) pair to open.
type Site struct {
	Row, Col int
}

// ParseSite parses "row,col" or "row col".
func ParseSite(s string) (Site, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Site{}, fmt.Errorf("%w: %q", ErrBadSite, s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Site{}, fmt.Errorf("%w: %q: %v", ErrBadSite, s, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Site{}, fmt.Errorf("%w: %q: %v", ErrBadSite, s, err)
	}

	return Site{Row: row, Col: col}, nil
}

// ParseArgs parses one site per argument.
func ParseArgs(args []string) ([]Site, error) {
	sites := make([]Site, 0, len(args))
	for _, a := range args {
		s, err := ParseSite(a)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}

	return sites, nil
}

// ParseLines reads one site per line. Blank lines and lines starting with '#' are skipped.
func ParseLines(r io.Reader) ([]Site, error) {
	var sites []Site
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := ParseSite(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sites = append(sites, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading sites: %w", err)
	}

	return sites, nil
}
