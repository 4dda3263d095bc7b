package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/btree-query-bench/btree/index/btree"
	"github.com/fatih/color"
)

const helpText = `
B-Tree CLI

Available Commands:
  INSERT <key>... Insert one or more integer keys
  SEARCH <key>    Report whether key is in the tree
  PRINT           Draw the tree
  OUTLINE         Draw the tree as an outline
  CHECK           Verify the tree's structural invariants
  STATS           Show degree, key count, height and node count
  HELP            Show this message
  EXIT            Terminate this session

`

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *btree.Tree

	ok   *color.Color
	warn *color.Color
	bad  *color.Color
}

func NewCli(s *bufio.Scanner, w io.Writer, t *btree.Tree) *Cli {
	return &Cli{
		scanner: s,
		out:     w,
		tree:    t,
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		bad:     color.New(color.FgRed),
	}
}

// Start reads commands until EXIT or end of input.
func (c *Cli) Start() error {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return nil
		}
		c.printPrompt()
	}
	return c.scanner.Err()
}

func (c *Cli) printHelp() {
	fmt.Fprint(c.out, helpText)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput runs one command line and reports whether to keep going.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.bad.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "insert":
		c.processInsertCommand(fields[1:])
	case "search":
		c.processSearchCommand(fields[1:])
	case "print":
		fmt.Fprint(c.out, c.tree.String())
	case "outline":
		fmt.Fprint(c.out, c.tree.Outline().String())
	case "check":
		c.processCheckCommand()
	case "stats":
		fmt.Fprintln(c.out, c.tree.Stats())
	case "help":
		c.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}
	keys := make([]int64, 0, len(args))
	for _, a := range args {
		k, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			c.bad.Fprintf(c.out, "Invalid key %q\n", a)
			return
		}
		keys = append(keys, k)
	}
	for _, k := range keys {
		c.tree.Insert(k)
	}
	fmt.Fprint(c.out, c.tree.String())
}

func (c *Cli) processSearchCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEARCH <key>")
		return
	}
	k, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		c.bad.Fprintf(c.out, "Invalid key %q\n", args[0])
		return
	}
	if x, ok := c.tree.Search(k); ok {
		c.ok.Fprintf(c.out, "Found %d in node %s\n", k, x)
		return
	}
	c.warn.Fprintln(c.out, "Key not found.")
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Check(); err != nil {
		c.bad.Fprintln(c.out, err)
		return
	}
	c.ok.Fprintln(c.out, "ok")
}
