// Copyright (c) 2026 The robdd-go authors
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// String returns a textual listing of the nodes reachable from the root of
// d, one node per line in the form "id [var] ? low : high".
func (d Diagram) String() string {
	if d.root == bddzero {
		return "False"
	}
	if d.root == bddone {
		return "True"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "root: %d\n", d.root)
	tw := tabwriter.NewWriter(&sb, 0, 0, 0, ' ', 0)
	for _, n := range d.tab.reachable(d.root) {
		if n > 1 {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", n, d.tab.level(n), d.tab.low(n), d.tab.high(n))
		}
	}
	tw.Flush()
	return sb.String()
}

// humanSize pretty-prints the memory footprint of count objects of the
// given unit size.
func humanSize(count int, size uintptr) string {
	bytes := float64(count) * float64(size)
	switch {
	case bytes >= 1<<30:
		return fmt.Sprintf("%.1f GB", bytes/(1<<30))
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", bytes/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f kB", bytes/(1<<10))
	}
	return fmt.Sprintf("%.0f B", bytes)
}

// ************************************************************

// PrintDot prints a graph-like description of the diagram on the standard
// output, using the DOT format.
func (d Diagram) PrintDot() {
	d.Dot(os.Stdout)
}

// FPrintDot prints a DOT description of the diagram into a file, or on the
// standard output if filename is "-".
func (d Diagram) FPrintDot(filename string) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return d.Dot(out)
}

// Dot writes a GraphViz DOT description of the diagram to w. Nodes are
// identified by their id and labelled with their variable; dotted arcs are
// low branches. We do not draw arcs that go to the constant false.
func (d Diagram) Dot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	for _, v := range d.tab.reachable(d.root) {
		if v > 1 {
			fmt.Fprintf(bw, "%d %s\n", v, dotlabel(v, d.tab.level(v)))
			if low := d.tab.low(v); low != bddzero {
				fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", v, low)
			}
			if high := d.tab.high(v); high != bddzero {
				fmt.Fprintf(bw, "%d -> %d [style=filled];\n", v, high)
			}
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(id, v int) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, v, id)
}
