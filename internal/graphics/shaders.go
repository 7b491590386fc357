package graphics

// Edge walls: lit by a fixed direction, tinted by the far-layer uv.
const edgeVertexSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;
uniform mat4 uProj;
uniform mat4 uView;
uniform mat4 uModel;
out vec2 vUV;
void main() {
	vUV = aUV;
	gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}`

const edgeFragmentSrc = `#version 410 core
in vec2 vUV;
uniform vec3 uColor;
out vec4 fragColor;
void main() {
	float shade = 1.0 - vUV.y * 4.0;
	fragColor = vec4(uColor * shade, 1.0);
}`

// Face quad: colour masked by the material texture.
const faceVertexSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;
uniform mat4 uProj;
uniform mat4 uView;
uniform mat4 uModel;
out vec2 vUV;
void main() {
	vUV = aUV;
	gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}`

const faceFragmentSrc = `#version 410 core
in vec2 vUV;
uniform sampler2D uMask;
uniform vec3 uColor;
out vec4 fragColor;
void main() {
	float a = texture(uMask, vUV).r;
	if (a < 0.5) discard;
	fragColor = vec4(uColor, 1.0);
}`
