package glrender

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `
#version 410 core
layout(location = 0) in vec3 a_position;
layout(location = 1) in vec3 a_normal;
uniform mat4 u_model;
uniform mat4 u_view;
uniform mat4 u_projection;
out vec3 v_normal;
void main() {
	mat4 modelView = u_view * u_model;
	v_normal = mat3(modelView) * a_normal;
	gl_Position = u_projection * modelView * vec4(a_position, 1.0);
}
` + "\x00"

const fragmentShader = `
#version 410 core
in vec3 v_normal;
uniform vec3 u_light;
uniform vec3 u_base;
uniform float u_ambient;
uniform float u_diffuse;
out vec4 fragColor;
void main() {
	vec3 n = normalize(v_normal);
	float ndl = max(dot(n, -normalize(u_light)), 0.0);
	fragColor = vec4(u_base * (u_ambient + u_diffuse * ndl), 1.0);
}
` + "\x00"

func buildShader(vertexSource, fragmentSource string) (uint32, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
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
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("glrender: link program: %s", strings.TrimRight(strings.TrimSpace(logMsg), "\x00"))
	}
	return program, nil
}

func compileShader(source string, kind uint32, name string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("glrender: compile %s shader: %s", name, strings.TrimRight(strings.TrimSpace(logMsg), "\x00"))
	}
	return shader, nil
}
