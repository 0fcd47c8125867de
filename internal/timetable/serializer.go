package timetable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const indent = "  "

// MarshalJSON renders the schedule as a compact JSON object whose keys follow the
// schedule's day order. HTML characters and the U+2028/U+2029 line separators are
// written as-is.
func (s *WeeklySchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encoder terminates every value with a newline
	encode := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for i, day := range s.days {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(day); err != nil {
			return nil, fmt.Errorf("failed to encode day %q: %w", day, err)
		}
		buf.WriteByte(':')
		if err := encode(s.entries[day]); err != nil {
			return nil, fmt.Errorf("failed to encode entries of %s: %w", day, err)
		}
	}
	buf.WriteByte('}')

	return unescapeLineSeparators(buf.Bytes()), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json always
// emits back into raw characters, leaving escaped backslashes followed by "u2028" alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '\\' || i+1 >= len(data) {
			out = append(out, c)
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) {
			switch string(data[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		// keep the whole escape pair so an escaped backslash is never rescanned
		out = append(out, c, data[i+1])
		i++
	}
	return out
}

// Marshal renders the schedule as a two-space indented JSON document ending with a newline
func Marshal(schedule *WeeklySchedule) ([]byte, error) {
	compact, err := schedule.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent schedule: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// Serialize writes the indented schedule document to w
func Serialize(w io.Writer, schedule *WeeklySchedule) error {
	data, err := Marshal(schedule)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}
