package document

// Texture mime types.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

// Texture is an image resource: raw encoded bytes plus the mime type
// needed to tell a PNG blob from a JPEG one.
type Texture struct {
	Name       string
	Extras     any
	Extensions any

	MimeType string
	Data     []byte

	// URI, when non-empty, is used verbatim in external packaging
	// instead of a generated name.
	URI string
}

// TextureSampler carries the per-use-site filtering and wrap
// configuration for one texture slot. Zero is "unset" for the filter
// fields (glTF has no filter value 0); wrap values are stored as
// given, with 0 treated the same as any other wrap code by the
// deduper — only the filters have an explicit unset sentinel.
type TextureSampler struct {
	MagFilter int64
	MinFilter int64
	WrapS     int64
	WrapT     int64
}

// TextureInfo carries the per-use-site UV set selection.
type TextureInfo struct {
	TexCoord int
}

// TexRef bundles a Texture with the sampler and UV parameters of one
// particular use of it. A single Texture may back many TexRefs across
// different materials; the writer deduplicates the resulting sampler
// and texture JSON entries structurally (see write.dedupe).
type TexRef struct {
	Texture *Texture
	Sampler TextureSampler
	Info    TextureInfo
}

// Alpha modes.
const (
	AlphaOpaque = "OPAQUE"
	AlphaMask   = "MASK"
	AlphaBlend  = "BLEND"
)

// Material is a PBR metallic-roughness material, glTF's only built-in
// shading model. Up to five texture slots may be populated, each
// through a TexRef.
type Material struct {
	Name       string
	Extras     any
	Extensions any

	BaseColorFactor          [4]float32
	BaseColorTexture         *TexRef
	MetallicFactor           float32
	RoughnessFactor          float32
	MetallicRoughnessTexture *TexRef

	NormalTexture *TexRef
	NormalScale   float32 // only meaningful when NormalTexture != nil; default 1

	OcclusionTexture  *TexRef
	OcclusionStrength float32 // only meaningful when OcclusionTexture != nil; default 1

	EmissiveTexture *TexRef
	EmissiveFactor  [3]float32

	// AlphaMode is one of AlphaOpaque, AlphaMask, AlphaBlend. An
	// empty value is treated as AlphaOpaque.
	AlphaMode   string
	AlphaCutoff float32 // only meaningful when AlphaMode == AlphaMask
	DoubleSided bool
}

// NewMaterial creates a Material with glTF's default factor values
// (opaque white, fully metallic, fully rough) rather than Go's zero
// value, mirroring the defaults a reader would see for an unset
// factor.
func NewMaterial() *Material {
	return &Material{
		BaseColorFactor: [4]float32{1, 1, 1, 1},
		MetallicFactor:  1,
		RoughnessFactor: 1,
		NormalScale:     1,
		OcclusionStrength: 1,
		AlphaMode:       AlphaOpaque,
	}
}
