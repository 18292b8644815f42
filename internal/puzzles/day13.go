package puzzles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/parser"
)

// Packet is an integer or a list of packets.
type Packet struct {
	IsList bool
	Value  int
	Items  []Packet
}

// List builds a list packet.
func List(items ...Packet) Packet {
	return Packet{IsList: true, Items: items}
}

// Int builds an integer packet.
func Int(v int) Packet {
	return Packet{Value: v}
}

// PacketError is a syntax error at a one-based column.
type PacketError struct {
	Column int
	Msg    string
}

func (e *PacketError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
}

type packetParser struct {
	src string
	pos int
}

func (p *packetParser) fail(format string, args ...any) error {
	return &PacketError{Column: p.pos + 1, Msg: fmt.Sprintf(format, args...)}
}

func (p *packetParser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *packetParser) list() (Packet, error) {
	if c, ok := p.peek(); !ok || c != '[' {
		return Packet{}, p.fail("expected '['")
	}
	p.pos++
	out := List()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return out, nil
	}
	for {
		item, err := p.element()
		if err != nil {
			return Packet{}, err
		}
		out.Items = append(out.Items, item)

		c, ok := p.peek()
		switch {
		case !ok:
			return Packet{}, p.fail("unclosed '['")
		case c == ',':
			p.pos++
		case c == ']':
			p.pos++
			return out, nil
		default:
			return Packet{}, p.fail("unexpected %q", c)
		}
	}
}

func (p *packetParser) element() (Packet, error) {
	c, ok := p.peek()
	if !ok {
		return Packet{}, p.fail("unclosed '['")
	}
	if c == '[' {
		return p.list()
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return Packet{}, p.fail("unexpected %q", c)
	}
	v, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		p.pos = start
		return Packet{}, p.fail("integer out of range")
	}
	return Int(v), nil
}

// ParsePacket parses one packet. The top level must be a list.
func ParsePacket(s string) (Packet, error) {
	p := &packetParser{src: s}
	out, err := p.list()
	if err != nil {
		return Packet{}, err
	}
	if p.pos != len(s) {
		return Packet{}, p.fail("trailing input")
	}
	return out, nil
}

// ComparePackets orders packets: negative when a comes first, positive when
// b does and zero when neither decides. An integer compared with a list is
// promoted to a one-element list.
func ComparePackets(a, b Packet) int {
	switch {
	case !a.IsList && !b.IsList:
		return a.Value - b.Value
	case !a.IsList:
		return ComparePackets(List(a), b)
	case !b.IsList:
		return ComparePackets(a, List(b))
	}
	for i := 0; i < len(a.Items) && i < len(b.Items); i++ {
		if c := ComparePackets(a.Items[i], b.Items[i]); c != 0 {
			return c
		}
	}
	return len(a.Items) - len(b.Items)
}

func (p Packet) String() string {
	if !p.IsList {
		return strconv.Itoa(p.Value)
	}
	parts := make([]string, len(p.Items))
	for i, item := range p.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Canonical renders lists as arrays and integers as numbers.
func (p Packet) Canonical() any {
	if !p.IsList {
		return p.Value
	}
	items := make([]any, len(p.Items))
	for i, item := range p.Items {
		items[i] = item
	}
	return items
}

// ParsePacketPairs parses pairs of packets separated by blank lines.
func ParsePacketPairs(lines []string) ([][2]Packet, error) {
	sections, err := parser.Sections(lines, parser.BlankLine)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]Packet, 0, len(sections))
	offset := 0
	for _, section := range sections {
		if len(section) != 2 {
			return nil, parser.RecordError(offset, strings.Join(section, "\n"), "want two packets, got %d", len(section))
		}
		packets, err := parser.MapRecords(section, ParsePacket)
		if err != nil {
			return nil, shiftIndex(offset, err)
		}
		pairs = append(pairs, [2]Packet{packets[0], packets[1]})
		offset += len(section) + 1
	}
	return pairs, nil
}

// OrderedPairSum sums the one-based indices of pairs already in order.
func OrderedPairSum(pairs [][2]Packet) int {
	total := 0
	for i, pair := range pairs {
		if ComparePackets(pair[0], pair[1]) < 0 {
			total += i + 1
		}
	}
	return total
}

// Divider packets for the decoder key.
var (
	DividerLow  = List(List(Int(2)))
	DividerHigh = List(List(Int(6)))
)

// DecoderKey multiplies the one-based positions the two dividers take when
// they are sorted together with every packet. Positions are counted rather
// than sorted out.
func DecoderKey(pairs [][2]Packet) int {
	low, high := 1, 2
	for _, pair := range pairs {
		for _, p := range pair {
			if ComparePackets(p, DividerLow) < 0 {
				low++
			}
			if ComparePackets(p, DividerHigh) < 0 {
				high++
			}
		}
	}
	return low * high
}

var day13Part1 = solveLines(func(lines []string, _ Params) (int, error) {
	pairs, err := ParsePacketPairs(lines)
	if err != nil {
		return 0, err
	}
	return OrderedPairSum(pairs), nil
})

var day13Part2 = solveLines(func(lines []string, _ Params) (int, error) {
	pairs, err := ParsePacketPairs(lines)
	if err != nil {
		return 0, err
	}
	return DecoderKey(pairs), nil
})
