package ppl

import (
	"bufio"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
)

// Dump renders sys as the ASCII text format below, a direct reading back
// of every field Load needs to reconstruct an equal system:
//
//	topology {NECESSARILY_CLOSED|NOT_NECESSARILY_CLOSED}
//	R x C (sorted)|(not_sorted)
//	index_first_pending I
//	<row 0>
//	...
//	<row R-1>
//
// Each row is "size W v0 v1 ... v{W-1} f <flags>", where <flags> is the
// four tokens "±RPI_V ±RPI ±NNC_V ±NNC" that, together with the row's own
// coefficients, pin down its linrow.Kind:
//
//	RPI_V  '+' for a line or an equality, '-' otherwise
//	RPI    '+' for a generator row, '-' for a constraint row
//	NNC_V  '+' when sys is not-necessarily-closed, '-' when closed
//	NNC    '+' for a closure point, '-' otherwise
//
// Load(Dump(x)) reproduces x's topology, width, rows and first-pending
// index. The sorted tag is written but not read back: the loaded system's
// sorted flag is recomputed from the order in which its rows arrive.
func Dump(sys *linsys.System) string {
	var b strings.Builder

	if sys.Topology() == linrow.NotNecessarilyClosed {
		fmt.Fprintln(&b, "topology NOT_NECESSARILY_CLOSED")
	} else {
		fmt.Fprintln(&b, "topology NECESSARILY_CLOSED")
	}

	sortedTag := "(not_sorted)"
	if sys.Sorted() {
		sortedTag = "(sorted)"
	}
	fmt.Fprintf(&b, "%d x %d %s\n", sys.NumRows(), sys.Width(), sortedTag)
	fmt.Fprintf(&b, "index_first_pending %d\n", sys.FirstPending())

	for _, r := range sys.Rows() {
		dumpRow(&b, r)
	}
	return b.String()
}

func dumpRow(b *strings.Builder, r linrow.Row) {
	fmt.Fprintf(b, "size %d", r.Width())
	for _, c := range r.Coeffs {
		fmt.Fprintf(b, " %s", c.String())
	}

	isGenerator := r.Kind == linrow.Line || r.Kind == linrow.Ray || r.Kind == linrow.Point || r.Kind == linrow.ClosurePoint

	fmt.Fprintf(b, " f %s %s %s %s\n",
		sign(r.Kind.IsLineOrEquality()),
		sign(isGenerator),
		sign(r.Topology == linrow.NotNecessarilyClosed),
		sign(r.Kind == linrow.ClosurePoint),
	)
}

func sign(v bool) string {
	if v {
		return "+"
	}
	return "-"
}

// Load parses text produced by Dump back into an equivalent System.
func Load(text string) (*linsys.System, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	top, err := loadTopologyLine(scanner)
	if err != nil {
		return nil, err
	}
	numRows, width, err := loadDimensionsLine(scanner)
	if err != nil {
		return nil, err
	}
	firstPending, err := loadFirstPendingLine(scanner)
	if err != nil {
		return nil, err
	}

	sys := linsys.New(width, top)
	for i := 0; i < numRows; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("ppl.Load: missing row %d: %w", i, ErrTruncated)
		}
		row, err := parseRow(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("ppl.Load: row %d: %w", i, err)
		}
		if i < firstPending {
			if err := sys.Insert(row); err != nil {
				return nil, fmt.Errorf("ppl.Load: row %d: %w", i, err)
			}
		} else {
			if err := sys.InsertPending(row); err != nil {
				return nil, fmt.Errorf("ppl.Load: row %d: %w", i, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ppl.Load: %w", err)
	}
	return sys, nil
}

func loadTopologyLine(scanner *bufio.Scanner) (linrow.Topology, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("ppl.Load: missing topology line: %w", ErrTruncated)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 || fields[0] != "topology" {
		return 0, fmt.Errorf("ppl.Load: malformed topology line %q: %w", scanner.Text(), ErrMalformed)
	}
	switch fields[1] {
	case "NOT_NECESSARILY_CLOSED":
		return linrow.NotNecessarilyClosed, nil
	case "NECESSARILY_CLOSED":
		return linrow.Closed, nil
	default:
		return 0, fmt.Errorf("ppl.Load: unknown topology %q: %w", fields[1], ErrMalformed)
	}
}

func loadDimensionsLine(scanner *bufio.Scanner) (numRows, width int, err error) {
	if !scanner.Scan() {
		return 0, 0, fmt.Errorf("ppl.Load: missing dimensions line: %w", ErrTruncated)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 4 || fields[1] != "x" {
		return 0, 0, fmt.Errorf("ppl.Load: malformed dimensions line %q: %w", scanner.Text(), ErrMalformed)
	}
	if fields[3] != "(sorted)" && fields[3] != "(not_sorted)" {
		return 0, 0, fmt.Errorf("ppl.Load: malformed sorted tag %q: %w", fields[3], ErrMalformed)
	}
	numRows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("ppl.Load: row count: %w", ErrMalformed)
	}
	width, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("ppl.Load: width: %w", ErrMalformed)
	}
	return numRows, width, nil
}

func loadFirstPendingLine(scanner *bufio.Scanner) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("ppl.Load: missing index_first_pending line: %w", ErrTruncated)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 || fields[0] != "index_first_pending" {
		return 0, fmt.Errorf("ppl.Load: malformed index_first_pending line %q: %w", scanner.Text(), ErrMalformed)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("ppl.Load: index_first_pending: %w", ErrMalformed)
	}
	return n, nil
}

func parseRow(line string) (linrow.Row, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "size" {
		return linrow.Row{}, fmt.Errorf("%w: missing size field", ErrMalformed)
	}
	w, err := strconv.Atoi(fields[1])
	if err != nil {
		return linrow.Row{}, fmt.Errorf("%w: bad width", ErrMalformed)
	}
	if len(fields) != 2+w+5 {
		return linrow.Row{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformed, 2+w+5, len(fields))
	}
	if fields[2+w] != "f" {
		return linrow.Row{}, fmt.Errorf("%w: missing flags marker", ErrMalformed)
	}

	coeffs := make([]integer.Coefficient, w)
	for i := 0; i < w; i++ {
		n, ok := new(big.Int).SetString(fields[2+i], 10)
		if !ok {
			return linrow.Row{}, fmt.Errorf("%w: bad coefficient %q", ErrMalformed, fields[2+i])
		}
		coeffs[i] = integer.FromBigInt(n)
	}

	flags := fields[2+w+1 : 2+w+5]
	rpiV, rpi, nncV, nnc := flags[0], flags[1], flags[2], flags[3]
	if rpiV != "+" && rpiV != "-" || rpi != "+" && rpi != "-" ||
		nncV != "+" && nncV != "-" || nnc != "+" && nnc != "-" {
		return linrow.Row{}, fmt.Errorf("%w: malformed flag token", ErrMalformed)
	}

	top := linrow.Closed
	if nncV == "+" {
		top = linrow.NotNecessarilyClosed
	}

	var kind linrow.Kind
	if rpi == "+" {
		switch {
		case rpiV == "+":
			kind = linrow.Line
		case coeffs[0].IsZero():
			kind = linrow.Ray
		case nnc == "+":
			kind = linrow.ClosurePoint
		default:
			kind = linrow.Point
		}
	} else {
		if rpiV == "+" {
			kind = linrow.Equality
		} else {
			kind = linrow.Inequality
		}
	}

	return linrow.Row{Coeffs: coeffs, Topology: top, Kind: kind}, nil
}
