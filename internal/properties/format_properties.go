package properties

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const propertiesWhitespace = " \t\f"

// parseProperties reads the .properties grammar: '#' and '!' comment lines,
// '=', ':' or whitespace between key and value, a trailing odd backslash
// continuing the logical line, and \t \n \r \f \uXXXX escapes. Leading value
// whitespace is dropped; empty values are kept.
func parseProperties(r io.Reader) (Properties, error) {
	props := make(Properties)
	scanner := bufio.NewScanner(r)

	var (
		logical    strings.Builder
		continuing bool
		lineNo     int
		startLine  int
	)

	flush := func() error {
		if err := props.addLine(logical.String()); err != nil {
			return fmt.Errorf("line %d: %w", startLine, err)
		}
		logical.Reset()
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimLeft(scanner.Text(), propertiesWhitespace)

		if !continuing {
			if line == "" || line[0] == '#' || line[0] == '!' {
				continue
			}
			startLine = lineNo
		}

		if hasContinuation(line) {
			logical.WriteString(line[:len(line)-1])
			continuing = true
			continue
		}

		logical.WriteString(line)
		continuing = false
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading properties: %w", err)
	}

	if continuing {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return props, nil
}

func (p Properties) addLine(line string) error {
	rawKey, rawValue := splitKeyValue(line)

	key, err := unescape(rawKey)
	if err != nil {
		return err
	}
	value, err := unescape(rawValue)
	if err != nil {
		return err
	}

	p[key] = value
	return nil
}

// hasContinuation reports whether line ends with an odd number of
// backslashes.
func hasContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}

	return n%2 == 1
}

func splitKeyValue(line string) (string, string) {
	i := 0
	for i < len(line) {
		c := line[i]
		if c == '\\' {
			i += 2
			continue
		}
		if c == '=' || c == ':' || strings.IndexByte(propertiesWhitespace, c) >= 0 {
			break
		}
		i++
	}
	if i > len(line) {
		i = len(line)
	}

	key := line[:i]
	rest := strings.TrimLeft(line[i:], propertiesWhitespace)
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], propertiesWhitespace)
	}

	return key, rest
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}

		i++
		if i >= len(s) {
			break
		}

		switch s[i] {
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 'f':
			sb.WriteByte('\f')
		case 'u':
			if i+5 > len(s) {
				return "", fmt.Errorf("%w: truncated \\u escape in %q", ErrMalformedProperties, s)
			}
			code, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: invalid \\u escape in %q", ErrMalformedProperties, s)
			}
			sb.WriteRune(rune(code))
			i += 4
		default:
			sb.WriteByte(s[i])
		}
	}

	return sb.String(), nil
}
