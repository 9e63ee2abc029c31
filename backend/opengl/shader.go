package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/clouds"
)

// Program is a linked shader program.
type Program struct {
	handle uint32
}

// Handle returns the GL program name. It is never 0 for a Program returned by
// LinkProgram or NewProgram.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// NewProgram compiles both stages and links them.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vs, err := CompileShader(clouds.StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}

	fs, err := CompileShader(clouds.StageFragment, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}

	return LinkProgram(vs, fs)
}

// CompileShader creates a shader object for stage and compiles source into it.
// On failure the shader object is deleted and a *clouds.CompileError carrying
// the full info log is returned.
func CompileShader(stage clouds.Stage, source string) (uint32, error) {
	var kind uint32
	switch stage {
	case clouds.StageVertex:
		kind = gl.VERTEX_SHADER
	case clouds.StageFragment:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unsupported shader stage %s", stage)
	}

	shader := gl.CreateShader(kind)
	if shader == 0 {
		return 0, fmt.Errorf("create %s shader: driver returned 0", stage)
	}

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &clouds.CompileError{Stage: stage, Log: clouds.InfoLog(log)}
	}

	return shader, nil
}

// LinkProgram attaches both compiled stages to a new program and links it.
// The stages are detached and deleted whatever the outcome; the caller must
// not use them afterwards.
func LinkProgram(vertexShader, fragmentShader uint32) (*Program, error) {
	defer gl.DeleteShader(fragmentShader)
	defer gl.DeleteShader(vertexShader)

	program := gl.CreateProgram()
	if program == 0 {
		return nil, clouds.ErrNullProgram
	}

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Detached stages are freed by the deferred deletes immediately.
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return nil, &clouds.LinkError{Log: clouds.InfoLog(log)}
	}

	clouds.Logger.Debug("shader program linked", "program", program)
	return &Program{handle: program}, nil
}
