package timetable

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadSlotTemplate reads a slot template JSON file, keeping the file's slot order
func LoadSlotTemplate(path string) (*SlotTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot template: %w", err)
	}
	defer f.Close()

	template, err := DecodeSlotTemplate(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return template, nil
}

// DecodeSlotTemplate parses a slot template document
func DecodeSlotTemplate(r io.Reader) (*SlotTemplate, error) {
	template := NewSlotTemplate()
	if err := decodeOrdered(r, template); err != nil {
		return nil, fmt.Errorf("invalid slot template: %w", err)
	}
	return template, nil
}

// LoadCourseSlots reads a course assignment JSON file, keeping the file's course order
func LoadCourseSlots(path string) (*CourseSlotAssignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open course slots: %w", err)
	}
	defer f.Close()

	assignments, err := DecodeCourseSlots(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return assignments, nil
}

// DecodeCourseSlots parses a course assignment document
func DecodeCourseSlots(r io.Reader) (*CourseSlotAssignment, error) {
	assignments := NewCourseSlotAssignment()
	if err := decodeOrdered(r, assignments); err != nil {
		return nil, fmt.Errorf("invalid course slots: %w", err)
	}
	return assignments, nil
}

func decodeOrdered(r io.Reader, v json.Unmarshaler) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
