package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
)

// Decision is the user's answer after an interactive hook
type Decision int

const (
	// Abort stops the workflow. It is the answer for anything that is not
	// an explicit yes or view, and for non-interactive input.
	Abort Decision = iota
	// Continue lets the workflow go on.
	Continue
	// View asks to see the full output before deciding.
	View
)

func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case View:
		return "view"
	default:
		return "abort"
	}
}

// ParseDecision maps an answer to a Decision: y/yes continue, v/view view,
// anything else (including empty) aborts. Case and surrounding whitespace
// are ignored.
func ParseDecision(answer string) Decision {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return Continue
	case "v", "view":
		return View
	default:
		return Abort
	}
}

// Controller prompts on a terminal and pages long output
type Controller struct {
	In    io.Reader
	Out   io.Writer
	Pager string // shell command, run with the text on stdin

	// IsTerminal reports whether In is interactive. Nil means In is
	// checked with isatty when it is an *os.File and treated as
	// non-interactive otherwise.
	IsTerminal func() bool

	reader *bufio.Reader
}

// NewController returns a Controller on the process's stdin and stdout.
func NewController(pager string) *Controller {
	return &Controller{In: os.Stdin, Out: os.Stdout, Pager: pager}
}

func (c *Controller) interactive() bool {
	if c.IsTerminal != nil {
		return c.IsTerminal()
	}
	f, ok := c.In.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prompt prints text and reads one line of input. Without a terminal it
// returns Abort immediately and prints nothing.
func (c *Controller) Prompt(text string) Decision {
	if !c.interactive() {
		return Abort
	}

	fmt.Fprintf(c.Out, "%s [y/N/v] ", text)

	// Keep one reader across prompts so buffered input isn't lost when
	// the user re-prompts after viewing.
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(c.Out)
		return Abort
	}
	return ParseDecision(line)
}

// ShowFull pipes text into the pager. If there is no pager or it fails to
// run, the text is printed directly instead.
func (c *Controller) ShowFull(text string) {
	if c.Pager != "" {
		pager := exec.Command("sh", "-c", c.Pager)
		pager.Stdin = strings.NewReader(text)
		pager.Stdout = c.Out
		pager.Stderr = io.Discard
		if err := pager.Run(); err == nil {
			return
		}
	}

	fmt.Fprintln(c.Out, text)
}
