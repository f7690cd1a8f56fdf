package material

import "strings"

// GLSLVersion is the version line every program compiles under.
const GLSLVersion = "#version 410 core"

// Declarations the engine supplies to standard-mode programs.
const (
	standardVertexPrefix = GLSLVersion + `
uniform mat4 modelMatrix;
uniform mat4 modelViewMatrix;
uniform mat4 projectionMatrix;
uniform mat4 viewMatrix;
uniform mat3 normalMatrix;
uniform vec3 cameraPosition;

in vec3 position;
in vec3 normal;
in vec2 uv;
`
	standardFragmentPrefix = GLSLVersion + `
uniform mat4 viewMatrix;
uniform vec3 cameraPosition;

out vec4 fragColor;
`
)

// Built-in attribute and matrix names the renderer feeds.
const (
	AttribPosition = "position"
	AttribNormal   = "normal"
	AttribUV       = "uv"

	MatrixProjection = "projectionMatrix"
	MatrixView       = "viewMatrix"
	MatrixModel      = "modelMatrix"
	MatrixModelView  = "modelViewMatrix"
	MatrixNormal     = "normalMatrix"
	CameraPosition   = "cameraPosition"
)

// ProgramSources returns the sources to compile. Raw programs are returned
// untouched; standard programs get the engine prefix, with the #line reset so
// compiler messages point at the author's lines.
func (m *Material) ProgramSources() (vertex, fragment string) {
	if m.Mode == ModeRaw {
		return m.Shaders.Vertex, m.Shaders.Fragment
	}
	return compose(standardVertexPrefix, m.Shaders.Vertex), compose(standardFragmentPrefix, m.Shaders.Fragment)
}

func compose(prefix, body string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(body) + 16)
	b.WriteString(prefix)
	b.WriteString("#line 1\n")
	b.WriteString(body)
	return b.String()
}

// ProgramKey identifies a compiled program; materials with equal keys share one.
func (m *Material) ProgramKey() string {
	v, f := m.ProgramSources()
	return v + "\x00" + f
}
