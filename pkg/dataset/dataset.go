// Package dataset reads social-graph edge lists into adjacency lists.
//
// The input holds one friendship per line, two integer ids separated by
// whitespace:
//
//	0 1
//	0 2
//	1 2
//
// Blank lines and lines starting with # are skipped. Lines for one id need
// not be contiguous.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned for lines that are not two integer ids.
var ErrMalformedLine = errors.New("malformed line")

// Graph maps profile ids to their friend ids. Ids keep the order in which
// they first appear as the left column.
type Graph struct {
	ids     []int
	friends map[int][]int
	edges   int
	maxID   int
}

// Parse reads an edge list from r.
func Parse(r io.Reader) (*Graph, error) {
	g := &Graph{friends: make(map[int][]int), maxID: -1}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedLine, err)
		}
		friend, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedLine, err)
		}
		g.add(id, friend)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	return g, nil
}

// Load reads an edge list file.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func (g *Graph) add(id, friend int) {
	if _, ok := g.friends[id]; !ok {
		g.ids = append(g.ids, id)
	}
	g.friends[id] = append(g.friends[id], friend)
	g.edges++
	g.maxID = max(g.maxID, id, friend)
}

// IDs returns the profile ids in first-seen order.
func (g *Graph) IDs() []int {
	return append([]int(nil), g.ids...)
}

// Friends returns the friend ids of id in file order.
func (g *Graph) Friends(id int) []int {
	return append([]int(nil), g.friends[id]...)
}

// Len returns the number of profiles with at least one friend.
func (g *Graph) Len() int { return len(g.ids) }

// EdgeCount returns the number of lines read.
func (g *Graph) EdgeCount() int { return g.edges }

// MaxID returns the largest id on either side, or -1 for an empty graph.
func (g *Graph) MaxID() int { return g.maxID }
