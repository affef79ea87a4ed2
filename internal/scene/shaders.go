package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// Globe shader: Blinn-Phong with ambient + one directional light, albedo from texture0 and a
// height map in texture2 that perturbs the normal via screen-space derivatives.
// Vertex attributes and matrices are the raylib defaults, so DrawMesh binds everything but the light.
const (
	globeVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	globeFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform sampler2D texture2;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 ambientColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float bumpScale;
uniform float useColorMap;
uniform float useBumpMap;
out vec4 finalColor;

float height(vec2 uv) {
  return bumpScale * texture(texture2, uv).r;
}

vec3 bumped(vec3 pos, vec3 n) {
  vec2 dUVdx = dFdx(fragTexCoord);
  vec2 dUVdy = dFdy(fragTexCoord);
  float h = height(fragTexCoord);
  float dHx = height(fragTexCoord + dUVdx) - h;
  float dHy = height(fragTexCoord + dUVdy) - h;

  vec3 sigmaX = dFdx(pos);
  vec3 sigmaY = dFdy(pos);
  vec3 r1 = cross(sigmaY, n);
  vec3 r2 = cross(n, sigmaX);
  float det = dot(sigmaX, r1);
  vec3 grad = sign(det) * (dHx * r1 + dHy * r2);
  return normalize(abs(det) * n - grad);
}

void main() {
  vec4 albedo = colDiffuse;
  if (useColorMap > 0.5) {
    albedo *= texture(texture0, fragTexCoord);
  }
  vec3 N = normalize(fragNormal);
  if (useBumpMap > 0.5) {
    N = bumped(fragPosition, N);
  }
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = albedo.rgb * lightColor * NdotL;
  vec3 H = normalize(L + V);
  float spec = NdotL > 0.0 ? pow(max(dot(N, H), 0.0), shininess) : 0.0;
  vec3 specular = specularColor * lightColor * spec;
  finalColor = vec4(ambientColor * albedo.rgb + diffuse + specular, albedo.a);
}
`
)

// globeUniforms caches uniform locations on the globe shader. -1 means the driver optimized it out.
type globeUniforms struct {
	viewPos       int32
	lightDir      int32
	lightColor    int32
	ambientColor  int32
	specularColor int32
	shininess     int32
	bumpScale     int32
	useColorMap   int32
	useBumpMap    int32
}

func loadGlobeShader() (rl.Shader, globeUniforms) {
	sh := rl.LoadShaderFromMemory(globeVS, globeFS)
	if !rl.IsShaderValid(sh) {
		return sh, globeUniforms{}
	}
	return sh, globeUniforms{
		viewPos:       rl.GetShaderLocation(sh, "viewPos"),
		lightDir:      rl.GetShaderLocation(sh, "lightDir"),
		lightColor:    rl.GetShaderLocation(sh, "lightColor"),
		ambientColor:  rl.GetShaderLocation(sh, "ambientColor"),
		specularColor: rl.GetShaderLocation(sh, "specularColor"),
		shininess:     rl.GetShaderLocation(sh, "shininess"),
		bumpScale:     rl.GetShaderLocation(sh, "bumpScale"),
		useColorMap:   rl.GetShaderLocation(sh, "useColorMap"),
		useBumpMap:    rl.GetShaderLocation(sh, "useBumpMap"),
	}
}

func setVec3(sh rl.Shader, loc int32, v [3]float32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValueV(sh, loc, v[:], rl.ShaderUniformVec3, 1)
}

func setFloat(sh rl.Shader, loc int32, f float32) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(sh, loc, []float32{f}, rl.ShaderUniformFloat)
}

func flag(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
