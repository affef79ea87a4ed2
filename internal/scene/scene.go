package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"globe/internal/scenedef"
	"globe/internal/textures"
)

// Texture keys used with textures.Loader.
const (
	KeyColor = "color"
	KeyBump  = "bump"
	KeyStars = "stars"
)

// Scene is the globe, its starfield backdrop, two lights and a perspective camera looking down -Z.
// GPU resources are created on the first Draw so they exist only once the window/GL context does.
type Scene struct {
	Camera rl.Camera3D
	def    scenedef.Definition
	aspect float32

	rotation rl.Matrix
	lightDir [3]float32

	meshesReady bool
	globeMesh   rl.Mesh
	globeMtl    rl.Material
	globeShader rl.Shader
	globeLocs   globeUniforms
	starMesh    rl.Mesh
	starMtl     rl.Material

	// Textures arrive one at a time from the loader; each is drawn as soon as it is set.
	colorTex, bumpTex, starTex rl.Texture2D
	hasColor, hasBump, hasStar bool
}

// New returns a scene for def viewed through a width×height surface.
// The camera sits at def.Distance on +Z looking toward -Z.
func New(def scenedef.Definition, width, height int) *Scene {
	s := &Scene{def: def, rotation: rl.MatrixIdentity()}
	if height > 0 {
		s.aspect = float32(width) / float32(height)
	} else {
		s.aspect = 1
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = def.Fovy
	s.Camera.Projection = rl.CameraPerspective
	s.SetDistance(def.Distance)
	s.lightDir = normalize(def.LightPosition)
	return s
}

// Definition returns the scene's tunables.
func (s *Scene) Definition() scenedef.Definition {
	return s.def
}

// SetDistance moves the camera along Z. The view direction stays -Z, so a negative distance
// looks away from the globe.
func (s *Scene) SetDistance(d float32) {
	s.Camera.Position = rl.NewVector3(0, 0, d)
	s.Camera.Target = rl.NewVector3(0, 0, d-1)
}

// SetRotation sets the globe's model rotation for the next Draw.
func (s *Scene) SetRotation(q mgl32.Quat) {
	s.rotation = rl.QuaternionToMatrix(rl.NewQuaternion(q.V[0], q.V[1], q.V[2], q.W))
}

// Request queues the scene's three textures on l.
func (s *Scene) Request(l *textures.Loader, roots []string) {
	l.Request(KeyColor, scenedef.Resolve(roots, s.def.ColorMap))
	l.Request(KeyBump, scenedef.Resolve(roots, s.def.BumpMap))
	l.Request(KeyStars, scenedef.Resolve(roots, s.def.StarMap))
}

// Upload moves a decoded texture to the GPU and attaches it. Failed results are ignored.
// Must run on the render thread.
func (s *Scene) Upload(r textures.Result) bool {
	if r.Err != nil || r.Img == nil {
		return false
	}
	b := r.Img.Bounds()
	img := rl.NewImage(r.Img.Pix, int32(b.Dx()), int32(b.Dy()), 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(img)
	if !rl.IsTextureValid(tex) {
		return false
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)

	switch r.Key {
	case KeyColor:
		s.colorTex, s.hasColor = tex, true
	case KeyBump:
		s.bumpTex, s.hasBump = tex, true
	case KeyStars:
		s.starTex, s.hasStar = tex, true
	default:
		rl.UnloadTexture(tex)
		return false
	}
	if s.meshesReady {
		s.bindTextures()
	}
	return true
}

func (s *Scene) ensureMeshes() {
	if s.meshesReady {
		return
	}
	s.globeMesh = rl.GenMeshSphere(s.def.GlobeRadius, s.def.GlobeRings, s.def.GlobeSlices)
	s.globeMtl = rl.LoadMaterialDefault()
	if albedo := s.globeMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	s.globeShader, s.globeLocs = loadGlobeShader()
	if rl.IsShaderValid(s.globeShader) {
		s.globeMtl.Shader = s.globeShader
	}

	s.starMesh = rl.GenMeshSphere(s.def.StarRadius, s.def.StarRings, s.def.StarSlices)
	s.starMtl = rl.LoadMaterialDefault()
	if albedo := s.starMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	s.meshesReady = true
	s.bindTextures()
}

func (s *Scene) bindTextures() {
	if s.hasColor {
		rl.SetMaterialTexture(&s.globeMtl, rl.MapAlbedo, s.colorTex)
	}
	if s.hasBump {
		rl.SetMaterialTexture(&s.globeMtl, rl.MapNormal, s.bumpTex)
	}
	if s.hasStar {
		rl.SetMaterialTexture(&s.starMtl, rl.MapAlbedo, s.starTex)
	}
}

func (s *Scene) setGlobeUniforms() {
	sh, locs := s.globeShader, s.globeLocs
	if !rl.IsShaderValid(sh) {
		return
	}
	d := s.def
	pos := s.Camera.Position
	lightColor := [3]float32{
		d.LightColor[0] * d.LightIntensity,
		d.LightColor[1] * d.LightIntensity,
		d.LightColor[2] * d.LightIntensity,
	}
	setVec3(sh, locs.viewPos, [3]float32{pos.X, pos.Y, pos.Z})
	setVec3(sh, locs.lightDir, s.lightDir)
	setVec3(sh, locs.lightColor, lightColor)
	setVec3(sh, locs.ambientColor, d.AmbientColor)
	setVec3(sh, locs.specularColor, d.SpecularColor)
	setFloat(sh, locs.shininess, d.Shininess)
	setFloat(sh, locs.bumpScale, d.BumpScale)
	setFloat(sh, locs.useColorMap, flag(s.hasColor))
	setFloat(sh, locs.useBumpMap, flag(s.hasBump))
}

// Draw renders the starfield (once its texture is in) and the globe. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw() {
	s.ensureMeshes()
	rl.BeginMode3D(s.Camera)
	// BeginMode3D uses raylib's fixed clip planes; replace them with the scene's.
	fovy := s.def.Fovy * math32.Pi / 180
	rl.SetMatrixProjection(rl.MatrixPerspective(fovy, s.aspect, s.def.Near, s.def.Far))

	if s.hasStar {
		// Mirrored so the inner faces survive back-face culling: only the far side of the
		// sphere is drawn, behind the globe.
		rl.DrawMesh(s.starMesh, s.starMtl, rl.MatrixScale(-1, 1, 1))
	}

	s.setGlobeUniforms()
	rl.DrawMesh(s.globeMesh, s.globeMtl, s.rotation)
	rl.EndMode3D()
}

// Unload frees GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	// UnloadMaterial would also free the shared textures; free each once instead.
	for _, t := range []struct {
		tex rl.Texture2D
		ok  bool
	}{{s.colorTex, s.hasColor}, {s.bumpTex, s.hasBump}, {s.starTex, s.hasStar}} {
		if t.ok {
			rl.UnloadTexture(t.tex)
		}
	}
	s.hasColor, s.hasBump, s.hasStar = false, false, false
	if !s.meshesReady {
		return
	}
	if rl.IsShaderValid(s.globeShader) {
		rl.UnloadShader(s.globeShader)
	}
	rl.UnloadMesh(&s.globeMesh)
	rl.UnloadMesh(&s.starMesh)
	s.meshesReady = false
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return [3]float32{0, 0, 1}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
