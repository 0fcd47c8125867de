// Package constants provides shared constants for the weekly-schedule application
package constants

// AppName is the name used for the root command and log context
const AppName = "weekly-schedule"

// Default input and output locations, relative to the working directory
const (
	DefaultSlotsTemplateFile = "slots_template.json"
	DefaultCourseSlotsFile   = "course_slots.json"
	DefaultScheduleFile      = "weekly.json"
)
