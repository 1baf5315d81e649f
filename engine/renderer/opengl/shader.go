package opengl

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/lantern/engine/math"
)

//go:embed shaders/scene.vert
var sceneVertexSource string

//go:embed shaders/scene.frag
var sceneFragmentSource string

// Shader is a compiled and linked GLSL program exposing its uniforms
// by name.
type Shader struct {
	handle uint32
}

// NewShader compiles and links the scene shader program. The GL
// context must be current.
func NewShader() (*Shader, error) {
	vertex, err := compileShader(sceneVertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(sceneFragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("could not link program: %s", infoLog)
	}

	return &Shader{handle: program}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("could not compile shader: %s", infoLog)
	}

	return shader, nil
}

// Use makes this program the active one; uniform writes target it
// from here on.
func (s *Shader) Use() {
	gl.UseProgram(s.handle)
}

// Destroy releases the GL program object.
func (s *Shader) Destroy() {
	gl.DeleteProgram(s.handle)
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.handle, gl.Str(name+"\x00"))
}

func (s *Shader) SetMat4(name string, value math.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value.Data[0])
}

func (s *Shader) SetVec2(name string, value math.Vec2) {
	gl.Uniform2f(s.location(name), value.X, value.Y)
}

func (s *Shader) SetVec3(name string, value math.Vec3) {
	gl.Uniform3f(s.location(name), value.X, value.Y, value.Z)
}

func (s *Shader) SetVec4(name string, value math.Vec4) {
	gl.Uniform4f(s.location(name), value.X, value.Y, value.Z, value.W)
}

func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	gl.Uniform1i(s.location(name), v)
}
