package reader

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dball/irange/types"
)

var tokenRegexp = regexp.MustCompile(`[\s,]*([()]|"(?:\\.|[^\\"])*"?|;.*|[^\s('"` + "`" + `,;)]*)`)

var integerRegexp = regexp.MustCompile(`^-?\d+$`)

// Reader reads tokens
type Reader struct {
	tokens []string
	offset int
}

// Error is a reader error
type Error struct {
	Message string
	Err     error
}

func (err Error) Unwrap() error { return err.Err }

func (err Error) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("reader error: %v", err.Message)
	}
	return fmt.Sprintf("reader error: %v: %v", err.Message, err.Err)
}

// Comment is an error indicating no token
type Comment struct{}

func (Comment) Error() string {
	return "Comment token"
}

func (reader *Reader) peek() *string {
	if reader.offset == len(reader.tokens) {
		return nil
	}
	return &reader.tokens[reader.offset]
}

func (reader *Reader) next() *string {
	token := reader.peek()
	if token != nil {
		reader.offset++
	}
	return token
}

func tokenize(s string) []string {
	matches := tokenRegexp.FindAllStringSubmatch(s, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		if match[1] != "" {
			tokens = append(tokens, match[1])
		}
	}
	return tokens
}

// ReadStr reads the first form in a string
func ReadStr(s string) (types.Value, error) {
	return readForm(&Reader{tokens: tokenize(s)})
}

func readForm(reader *Reader) (types.Value, error) {
	for {
		token := reader.peek()
		if token == nil {
			return nil, Error{"Unexpected end of input reading form", nil}
		}
		switch *token {
		case "(":
			reader.next()
			return readList(reader)
		case ")":
			reader.next()
			return nil, Error{"Unbalanced closing paren", nil}
		default:
			val, err := readAtom(reader)
			if _, comment := err.(Comment); comment {
				continue
			}
			return val, err
		}
	}
}

func readList(reader *Reader) (types.Value, error) {
	var items []types.Value
	for {
		token := reader.peek()
		if token == nil {
			return nil, Error{"Unexpected end of input reading list", nil}
		}
		if *token == ")" {
			reader.next()
			return types.NewList(items...), nil
		}
		if (*token)[0] == ';' {
			reader.next()
			continue
		}
		value, err := readForm(reader)
		if err != nil {
			return nil, Error{"Error reading list", err}
		}
		items = append(items, value)
	}
}

func readAtom(reader *Reader) (types.Value, error) {
	token := *reader.next()
	if integerRegexp.MatchString(token) {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, Error{"Unparseable integer", err}
		}
		return types.Integer(value), nil
	}
	switch token[0] {
	case ';':
		return nil, Comment{}
	case '"':
		return parseString([]rune(token))
	}
	switch token {
	case "true":
		return types.Boolean(true), nil
	case "false":
		return types.Boolean(false), nil
	case "nil":
		return types.Nil{}, nil
	default:
		return types.NewSymbol(token), nil
	}
}

func parseString(runes []rune) (types.Value, error) {
	last := len(runes) - 1
	if last == 0 || runes[last] != '"' {
		return nil, Error{"String quotes are unbalanced", nil}
	}
	var result []rune
	var escaping bool
	for _, r := range runes[1:last] {
		if !escaping {
			if r == '\\' {
				escaping = true
			} else {
				result = append(result, r)
			}
			continue
		}
		switch r {
		case '\\', '"':
			result = append(result, r)
		case 'n':
			result = append(result, '\n')
		default:
			return nil, Error{"String escape sequence is invalid", nil}
		}
		escaping = false
	}
	if escaping {
		return nil, Error{"String slashes are unbalanced", nil}
	}
	return types.String(string(result)), nil
}
