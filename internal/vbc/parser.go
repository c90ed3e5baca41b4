package vbc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/bbtree/internal/domain"
)

var (
	timestampPattern = regexp.MustCompile(`^\d+:\d+:\d+(\.\d+)?$`)
	// Solvers write the separators as literal escape sequences (\t, \i, \n).
	infoSeparator = regexp.MustCompile(`\\[tin]|\t|\|`)
	numberPattern = regexp.MustCompile(`[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
	branchPattern = regexp.MustCompile(`^(.*) (\[.*\]) ([<=>]*) (.*)$`)
)

const (
	infoFieldDepth  = 4
	infoFieldBranch = 6
	infoFieldBound  = 8
)

// ParseLine classifies one log line. Comment and blank lines yield a nil
// Record and a nil error.
func ParseLine(lineNo int, line string) (Record, error) {
	text := strings.TrimSpace(line)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil, nil
	}

	tag, rest := nextToken(text)
	if timestampPattern.MatchString(tag) {
		tag, rest = nextToken(rest)
	}

	p := lineParser{line: lineNo}
	switch tag {
	case "N", "D":
		return p.newNode(rest)
	case "P":
		return p.newColor(rest)
	case "I":
		return p.nodeInfo(rest)
	case "A":
		return p.solutionInfo(rest)
	case "U":
		return p.boundUpdate(BoundUpper, rest)
	case "L":
		return p.boundUpdate(BoundLower, rest)
	}
	return nil, &domain.ParseError{Line: lineNo, Token: tag, Reason: "unrecognized record tag"}
}

type lineParser struct {
	line int
}

func (p lineParser) fail(token, reason string) error {
	return &domain.ParseError{Line: p.line, Token: token, Reason: reason}
}

func (p lineParser) newNode(rest string) (Record, error) {
	f := strings.Fields(rest)
	if len(f) < 3 {
		return nil, p.fail(rest, "new node needs father, id and color")
	}
	parent, err := p.integer(f[0], 0)
	if err != nil {
		return nil, err
	}
	id, err := p.integer(f[1], 1)
	if err != nil {
		return nil, err
	}
	color, err := p.color(f[2])
	if err != nil {
		return nil, err
	}
	// Node 1 is the root and the only node without a father.
	if id == 1 && parent != 0 {
		return nil, p.fail(f[0], "root node 1 cannot have a father")
	}
	if id != 1 && parent == 0 {
		return nil, p.fail(f[1], "only node 1 may be created without a father")
	}
	return NewNode{Parent: parent, ID: id, Color: color}, nil
}

func (p lineParser) newColor(rest string) (Record, error) {
	f := strings.Fields(rest)
	if len(f) < 2 {
		return nil, p.fail(rest, "recolor needs id and color")
	}
	id, err := p.integer(f[0], 1)
	if err != nil {
		return nil, err
	}
	color, err := p.color(f[1])
	if err != nil {
		return nil, err
	}
	return NewColor{ID: id, Color: color}, nil
}

func (p lineParser) nodeInfo(rest string) (Record, error) {
	fields := infoSeparator.Split(rest, -1)
	if len(fields) <= infoFieldBound {
		return nil, p.fail(rest, "node info has too few fields")
	}
	idTok, _ := nextToken(fields[0])
	id, err := p.integer(idTok, 1)
	if err != nil {
		return nil, err
	}
	boundTok := strings.TrimSpace(fields[infoFieldBound])
	dual, err := strconv.ParseFloat(boundTok, 64)
	if err != nil {
		return nil, p.fail(boundTok, "malformed dual bound")
	}
	return NodeInfo{
		ID:        id,
		Depth:     strings.TrimSpace(fields[infoFieldDepth]),
		Branch:    FormatBranch(strings.TrimSpace(fields[infoFieldBranch])),
		DualBound: domain.SigRound(dual, domain.DefaultDigits),
	}, nil
}

func (p lineParser) solutionInfo(rest string) (Record, error) {
	fields := infoSeparator.Split(rest, -1)
	idTok, tail := nextToken(fields[0])
	if idTok == "" {
		return nil, p.fail(rest, "solution info needs a node id")
	}
	id, err := p.integer(idTok, 1)
	if err != nil {
		return nil, err
	}

	info := strings.TrimSpace(tail)
	if len(fields) > 1 {
		info = strings.TrimSpace(fields[1])
	}
	num := numberPattern.FindString(info)
	if num == "" && len(fields) > 2 {
		num = numberPattern.FindString(strings.Join(fields[2:], " "))
	}
	if num == "" {
		return nil, p.fail(info, "solution info carries no objective value")
	}
	obj, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, p.fail(num, "malformed objective value")
	}
	return SolutionInfo{ID: id, Info: info, Objective: domain.SigRound(obj, domain.DefaultDigits)}, nil
}

func (p lineParser) boundUpdate(kind BoundKind, rest string) (Record, error) {
	tok, _ := nextToken(rest)
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, p.fail(tok, "malformed primal bound")
	}
	return BoundUpdate{Kind: kind, Value: domain.SigRound(v, domain.DefaultDigits)}, nil
}

func (p lineParser) integer(tok string, floor int) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.fail(tok, "expected an integer")
	}
	if n < floor {
		return 0, p.fail(tok, "node id out of range")
	}
	return n, nil
}

func (p lineParser) color(tok string) (domain.Color, error) {
	c, err := domain.ColorForCode(tok)
	if err != nil {
		return "", p.fail(tok, "unknown color code")
	}
	return c, nil
}

// FormatBranch rewrites "<var> [lo,hi] <op> <value>" as two lines,
// "<var> in [lo,hi]" and "<var> <op> <rounded value>". Anything else is
// returned unchanged.
func FormatBranch(s string) string {
	m := branchPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	value := m[4]
	if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		value = domain.SigRoundNice(v, domain.DefaultDigits)
	}
	return m[1] + " in " + m[2] + "\n" + m[1] + " " + m[3] + " " + value
}

// nextToken splits off the first whitespace-delimited token.
func nextToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
