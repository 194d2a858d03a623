package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dball/irange/types"
)

// DefaultMaxSeqLength is the preview length used when none is configured
const DefaultMaxSeqLength = 10

// Config controls printing behavior
type Config struct {
	Readably     bool
	MaxSeqLength int
}

func (config Config) maxSeqLength() int64 {
	if config.MaxSeqLength <= 0 {
		return DefaultMaxSeqLength
	}
	return int64(config.MaxSeqLength)
}

// PrintStr prints values
func PrintStr(config Config, value types.Value) string {
	switch v := value.(type) {
	case types.Integer:
		return strconv.FormatInt(int64(v), 10)
	case types.Symbol:
		return v.Name
	case types.Range:
		return PrintRange(config, v)
	case types.List:
		return printSeq(config, v.Seq(), "(", ")")
	case types.Seq:
		return printLazySeq(config, v)
	case types.String:
		return printString(config, v)
	case types.Function:
		return "#FN " + v.Name
	case types.Boolean:
		if v {
			return "true"
		}
		return "false"
	case types.Nil:
		return "nil"
	case error:
		return printString(config, types.String(v.Error()))
	default:
		return fmt.Sprintf("#UNKNOWN: %v", value)
	}
}

// PrintRange names the bounds and previews the leading elements. A long range
// is elided down to its last element, which is fetched by index so the range
// is never walked past the preview.
func PrintRange(config Config, r types.Range) string {
	var sb strings.Builder
	sb.WriteString(r.String())
	sb.WriteString(" [")
	count := r.Count()
	limit := config.maxSeqLength()
	shown := count
	if count > limit+1 {
		shown = limit
	}
	for i := int64(0); i < shown; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		item, _ := r.ElementAt(i)
		sb.WriteString(strconv.FormatInt(item, 10))
	}
	if shown < count {
		last, _ := r.Last()
		sb.WriteString(", ..., ")
		sb.WriteString(strconv.FormatInt(last, 10))
	}
	sb.WriteRune(']')
	return sb.String()
}

func printSeq(config Config, seq types.Seq, first string, last string) string {
	var sb strings.Builder
	sb.WriteString(first)
	i := 0
	for {
		empty, head, tail := seq.Next()
		if empty {
			break
		}
		if i > 0 {
			sb.WriteRune(' ')
		}
		i++
		sb.WriteString(PrintStr(config, head))
		seq = tail
	}
	sb.WriteString(last)
	return sb.String()
}

// printLazySeq prints at most the preview length of a seq, marking any rest with ...
func printLazySeq(config Config, seq types.Seq) string {
	var sb strings.Builder
	sb.WriteRune('(')
	limit := config.maxSeqLength()
	for i := int64(0); ; i++ {
		empty, head, tail := seq.Next()
		if empty {
			break
		}
		if i > 0 {
			sb.WriteRune(' ')
		}
		if i == limit {
			sb.WriteString("...")
			break
		}
		sb.WriteString(PrintStr(config, head))
		seq = tail
	}
	sb.WriteRune(')')
	return sb.String()
}

// When readably is true, doublequotes, newlines, and backslashes are translated into their printed representations
func printString(config Config, s types.String) string {
	if !config.Readably {
		return string(s)
	}
	var sb strings.Builder
	sb.WriteRune('"')
	for _, r := range string(s) {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteRune('"')
	return sb.String()
}
