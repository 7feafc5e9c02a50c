package serialization

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const yamlDelimiter = "---"

// decodeFrontmatter splits a markdown document into its YAML header, decoded
// into meta, and the body that follows. Documents without a header are all body.
func decodeFrontmatter(data []byte, meta any) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		return "", nil
	}
	if strings.TrimSpace(scanner.Text()) != yamlDelimiter {
		return strings.TrimSpace(string(data)), nil
	}

	var header []string
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == yamlDelimiter {
			closed = true
			break
		}
		header = append(header, line)
	}
	if !closed {
		return "", fmt.Errorf("unterminated frontmatter")
	}
	if len(header) > 0 {
		if err := yaml.Unmarshal([]byte(strings.Join(header, "\n")), meta); err != nil {
			return "", fmt.Errorf("failed to parse YAML frontmatter: %w", err)
		}
	}

	var body []string
	for scanner.Scan() {
		body = append(body, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading document: %w", err)
	}
	return strings.TrimSpace(strings.Join(body, "\n")), nil
}

// encodeFrontmatter writes meta as a YAML header followed by body
func encodeFrontmatter(meta any, body string) ([]byte, error) {
	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(yamlDelimiter + "\n")
	buf.Write(header)
	buf.WriteString(yamlDelimiter + "\n")
	if body != "" {
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}
