package puzzles

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/parser"
)

// Filesystem limits for freeing space.
const (
	DiskSize    = 70_000_000
	NeededSpace = 30_000_000

	// SmallDirLimit bounds the directories summed by the first answer.
	SmallDirLimit = 100_000
)

// Dir is a directory rebuilt from a shell transcript.
type Dir struct {
	Name   string
	Parent *Dir
	Dirs   map[string]*Dir
	Files  map[string]int64

	size int64
}

func newDir(name string, parent *Dir) *Dir {
	return &Dir{Name: name, Parent: parent, Dirs: map[string]*Dir{}, Files: map[string]int64{}}
}

// Size returns the total size of every file below d.
func (d *Dir) Size() int64 {
	return d.size
}

// Walk calls fn for d and every directory below it, children in name order.
func (d *Dir) Walk(fn func(*Dir)) {
	fn(d)
	for _, name := range slices.Sorted(maps.Keys(d.Dirs)) {
		d.Dirs[name].Walk(fn)
	}
}

func (d *Dir) computeSizes() int64 {
	var total int64
	for _, s := range d.Files {
		total += s
	}
	for _, sub := range d.Dirs {
		total += sub.computeSizes()
	}
	d.size = total
	return total
}

func (d *Dir) child(name string) *Dir {
	sub, ok := d.Dirs[name]
	if !ok {
		sub = newDir(name, d)
		d.Dirs[name] = sub
	}
	return sub
}

// ParseTranscript rebuilds the tree from "$ cd", "$ ls" and listing lines.
// A file listed twice is counted once.
func ParseTranscript(lines []string) (*Dir, error) {
	root := newDir("/", nil)
	cwd := root
	for i, line := range lines {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 3 && fields[0] == "$" && fields[1] == "cd":
			switch fields[2] {
			case "/":
				cwd = root
			case "..":
				if cwd.Parent == nil {
					return nil, parser.RecordError(i, line, "cd .. above root")
				}
				cwd = cwd.Parent
			default:
				cwd = cwd.child(fields[2])
			}
		case len(fields) == 2 && fields[0] == "$" && fields[1] == "ls":
		case len(fields) == 2 && fields[0] == "dir":
			cwd.child(fields[1])
		case len(fields) == 2:
			size, err := strconv.ParseInt(fields[0], 10, 64)
			if err != nil || size < 0 {
				return nil, parser.RecordError(i, line, "invalid file size %q", fields[0])
			}
			cwd.Files[fields[1]] = size
		default:
			return nil, parser.RecordError(i, line, "unrecognized transcript line")
		}
	}
	root.computeSizes()
	return root, nil
}

// SmallDirTotal sums the sizes of directories no larger than limit.
// Nested directories are counted each time they qualify.
func SmallDirTotal(root *Dir, limit int64) int64 {
	var total int64
	root.Walk(func(d *Dir) {
		if d.size <= limit {
			total += d.size
		}
	})
	return total
}

// DirToDelete returns the size of the smallest directory whose removal
// leaves NeededSpace free. It is zero when enough space is already free.
func DirToDelete(root *Dir) (int64, error) {
	if root.size > DiskSize {
		return 0, errors.New("used space exceeds the disk")
	}
	need := NeededSpace - (DiskSize - root.size)
	if need <= 0 {
		return 0, nil
	}
	best := root.size
	root.Walk(func(d *Dir) {
		if d.size >= need && d.size < best {
			best = d.size
		}
	})
	return best, nil
}

var day07Part1 = solveLines(func(lines []string, _ Params) (int64, error) {
	root, err := ParseTranscript(lines)
	if err != nil {
		return 0, err
	}
	return SmallDirTotal(root, SmallDirLimit), nil
})

var day07Part2 = solveLines(func(lines []string, _ Params) (int64, error) {
	root, err := ParseTranscript(lines)
	if err != nil {
		return 0, err
	}
	return DirToDelete(root)
})
