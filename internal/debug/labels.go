package debug

import "graphics-prototyper/internal/graphics"

// ignoredIDs are driver message ids that carry no useful information
// (buffer placement hints, shader recompiles and the like).
var ignoredIDs = map[uint32]bool{
	131169: true,
	131185: true,
	131218: true,
	131204: true,
}

var errorLabels = map[uint32]string{
	graphics.InvalidEnum:                 "INVALID_ENUM",
	graphics.InvalidValue:                "INVALID_VALUE",
	graphics.InvalidOperation:            "INVALID_OPERATION",
	graphics.StackOverflow:               "STACK_OVERFLOW",
	graphics.StackUnderflow:              "STACK_UNDERFLOW",
	graphics.OutOfMemory:                 "OUT_OF_MEMORY",
	graphics.InvalidFramebufferOperation: "INVALID_FRAMEBUFFER_OPERATION",
}

var typeLabels = map[uint32]string{
	graphics.DebugTypeError:              "Error",
	graphics.DebugTypeDeprecatedBehavior: "Deprecated Behavior",
	graphics.DebugTypeUndefinedBehavior:  "Undefined Behavior",
	graphics.DebugTypePortability:        "Portability",
	graphics.DebugTypePerformance:        "Performance",
	graphics.DebugTypeMarker:             "Marker",
	graphics.DebugTypePushGroup:          "Push Group",
	graphics.DebugTypePopGroup:           "Pop Group",
	graphics.DebugTypeOther:              "Other",
}

var sourceLabels = map[uint32]string{
	graphics.DebugSourceAPI:            "API",
	graphics.DebugSourceWindowSystem:   "Window System",
	graphics.DebugSourceShaderCompiler: "Shader Compiler",
	graphics.DebugSourceThirdParty:     "Third Party",
	graphics.DebugSourceApplication:    "Application",
	graphics.DebugSourceOther:          "Other",
}

var severityLabels = map[uint32]string{
	graphics.DebugSeverityHigh:         "high",
	graphics.DebugSeverityMedium:       "medium",
	graphics.DebugSeverityLow:          "low",
	graphics.DebugSeverityNotification: "notification",
}

// Ignored reports whether messages with this id are dropped.
func Ignored(id uint32) bool { return ignoredIDs[id] }

// ErrorLabel returns the name of a glGetError code, or "" if unknown.
func ErrorLabel(code uint32) string { return errorLabels[code] }

// TypeLabel returns the label for a debug message type, or "" if unknown.
func TypeLabel(typ uint32) string { return typeLabels[typ] }

// SourceLabel returns the label for a debug message source, or "" if unknown.
func SourceLabel(source uint32) string { return sourceLabels[source] }

// SeverityLabel returns the label for a debug message severity, or "" if unknown.
func SeverityLabel(severity uint32) string { return severityLabels[severity] }
