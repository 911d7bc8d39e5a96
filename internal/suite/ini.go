package suite

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Minimal INI reader for suite.ini. Comment lines start with '#' or ';'
// (leading whitespace allowed). A '#' appearing after a value is NOT a
// comment: it stays part of the value. Comments must occupy their own line.

type iniFile struct {
	sections map[string]map[string]string
}

func parseINI(r io.Reader) (*iniFile, error) {
	f := &iniFile{sections: make(map[string]map[string]string)}
	section := ""
	f.sections[section] = make(map[string]string)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: malformed section header %q", lineNo, line)
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			if _, ok := f.sections[section]; !ok {
				f.sections[section] = make(map[string]string)
			}
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, fmt.Errorf("line %d: expected key = value, got %q", lineNo, line)
		}
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}
		f.sections[section][key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

// get returns the value for key in section, with ok reporting presence.
func (f *iniFile) get(section, key string) (string, bool) {
	kv, ok := f.sections[section]
	if !ok {
		return "", false
	}
	v, ok := kv[key]
	return v, ok
}
