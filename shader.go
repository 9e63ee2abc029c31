package clouds

import (
	"errors"
	"fmt"
	"strings"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the lowercase stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// VertexShaderSource passes attribute slot 0 straight through as the clip-space
// position.
const VertexShaderSource = `#version 330 core

layout (location = 0) in vec3 position;

void main() {
    gl_Position = vec4(position.x, position.y, position.z, 1.0);
}
`

// FragmentShaderSource fills every fragment with a fixed orange.
const FragmentShaderSource = `#version 330 core

out vec4 color;

void main() {
    color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// ErrNullProgram is returned when the driver hands back a zero program name.
var ErrNullProgram = errors.New("program object creation returned 0")

// CompileError reports a shader stage the driver rejected.
// Log holds the complete driver info log.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", strings.TrimSpace(e.Log))
}

// InfoLog converts a NUL-terminated driver log buffer into a Go string.
func InfoLog(buf []byte) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
