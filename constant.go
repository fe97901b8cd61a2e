package dragonbones

import "github.com/go-gl/mathgl/mgl32"

const (
	UnsetFrameRate = -1 // Armature 未指定帧率，解码最后一步替换为 Document 帧率

	DefaultDisplayIndex    = 0
	DefaultBlendMode       = "normal"
	DefaultInheritFFD      = true
	DefaultBendPositive    = true
	DefaultChain           = 0
	DefaultIkWeight        = 0.0
	DefaultLoop            = 1
	DefaultDuration        = 1.0
	DefaultTimelineScale   = 1.0
	DefaultTimelineOffset  = 0.0
	DefaultColorMultiplier = 100.0
	DefaultColorOffset     = 0.0
)

var (
	DefaultPivot = mgl32.Vec2{0.5, 0.5}

	// 缩放默认是 1 不是 0
	DefaultTransform = Transform{Scale: mgl32.Vec2{1, 1}}

	DefaultColor = Color{
		AM: DefaultColorMultiplier, RM: DefaultColorMultiplier, GM: DefaultColorMultiplier, BM: DefaultColorMultiplier,
		AO: DefaultColorOffset, RO: DefaultColorOffset, GO: DefaultColorOffset, BO: DefaultColorOffset,
	}
)

type AnimationType uint8

const (
	AnimationArmature  AnimationType = 0
	AnimationMovieClip AnimationType = 1
	AnimationStage     AnimationType = 2
)

var animationTypeTags = map[string]AnimationType{
	"Armature":  AnimationArmature,
	"MovieClip": AnimationMovieClip,
	"Stage":     AnimationStage,
}

func (t AnimationType) String() string {
	switch t {
	case AnimationArmature:
		return "Armature"
	case AnimationMovieClip:
		return "MovieClip"
	case AnimationStage:
		return "Stage"
	default:
		return "unknown"
	}
}

type DisplayType uint8

const (
	DisplayImage       DisplayType = 0
	DisplayArmature    DisplayType = 1
	DisplayMesh        DisplayType = 2
	DisplayBoundingBox DisplayType = 3
	DisplayUnknown     DisplayType = 255 // 扩展类型，保留原始数据
)

var displayTypeTags = map[string]DisplayType{
	"image":       DisplayImage,
	"armature":    DisplayArmature,
	"mesh":        DisplayMesh,
	"boundingBox": DisplayBoundingBox,
}

func (t DisplayType) String() string {
	switch t {
	case DisplayImage:
		return "image"
	case DisplayArmature:
		return "armature"
	case DisplayMesh:
		return "mesh"
	case DisplayBoundingBox:
		return "boundingBox"
	default:
		return "unknown"
	}
}

type BoundBoxType uint8

const (
	BoundBoxRectangle BoundBoxType = 0
	BoundBoxEllipse   BoundBoxType = 1
	BoundBoxPolygon   BoundBoxType = 2
	BoundBoxUnknown   BoundBoxType = 255
)

var boundBoxTypeTags = map[string]BoundBoxType{
	"rectangle": BoundBoxRectangle,
	"ellipse":   BoundBoxEllipse,
	"polygon":   BoundBoxPolygon,
}

func (t BoundBoxType) String() string {
	switch t {
	case BoundBoxRectangle:
		return "rectangle"
	case BoundBoxEllipse:
		return "ellipse"
	case BoundBoxPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// 第二遍：依赖上下文的默认值
func resolveDefaults(doc *Document) {
	for _, armature := range doc.Armatures {
		if armature.FrameRate == UnsetFrameRate {
			armature.FrameRate = doc.FrameRate
		}
	}
}
