// Package dragonbones 把 DragonBones 导出的 JSON 结构树解码为强类型的骨骼动画数据
package dragonbones

import (
	"github.com/Masterminds/semver/v3"
	"github.com/go-gl/mathgl/mgl32"
)

// Document 对应一个导出文件
type Document struct {
	Name              string
	Version           *semver.Version
	CompatibleVersion *semver.Version
	FrameRate         float32
	UserData          any
	Armatures         []*Armature
}

type Armature struct {
	Name           string
	FrameRate      float32 // 解码后一定是具体值，缺省继承 Document.FrameRate
	Type           AnimationType
	UserData       any
	DefaultActions []*Action
	Bones          []*Bone // 顺序有意义 IK 计算顺序
	Slots          []*Slot // 顺序有意义 默认绘制顺序
	Skins          []*Skin
	Iks            []*Ik
	Animations     []*Animation
}

// Bone 通过 Parent 名字引用父骨骼，根骨骼为空字符串
type Bone struct {
	Name      string
	Parent    string
	Length    float32
	UserData  any
	Transform Transform
}

type Transform struct {
	Pos   mgl32.Vec2 // x y
	Skew  mgl32.Vec2 // skX skY
	Scale mgl32.Vec2 // scX scY
}

type Slot struct {
	Name         string
	Parent       string // 所在骨骼
	DisplayIndex int
	BlendMode    string // 原样保留
	UserData     any
	Color        Color
	Actions      []*Action
}

// Color 乘法通道是百分比 [0~100]，偏移通道 [-255~255]
type Color struct {
	AM, RM, GM, BM float32
	AO, RO, GO, BO float32
}

type Skin struct {
	Name  string
	Slots []*SkinSlot
}

type SkinSlot struct {
	Name     string
	Displays []*Display
}

type Display struct {
	Name       string
	Type       DisplayType
	TypeTag    string         // 仅 DisplayUnknown 使用，原始 type 字符串
	Raw        map[string]any // 仅 DisplayUnknown 使用，原始数据
	Path       string
	Share      string
	InheritFFD bool
	SubType    BoundBoxType
	SubTypeTag string // 仅 BoundBoxUnknown 使用
	Color      uint32
	Transform  Transform
	Pivot      mgl32.Vec2
	Width      float32
	Height     float32
	// mesh 与 polygon 包围盒
	Vertices []mgl32.Vec2
	// mesh
	UVs       []mgl32.Vec2
	Triangles []Triangle
	Weights   []Weight
	SlotPose  []mgl32.Mat3
	BonePose  []BonePose
}

// Ik 的 Bone 与 Target 都是骨骼名字
type Ik struct {
	Name         string
	Bone         string
	Target       string
	BendPositive bool
	Chain        int // 0 只约束自己，n 向上约束 n 级父骨骼
	Weight       float32
}

// Action 例如 ["gotoAndPlay", "walk"]
type Action struct {
	Type string
	Name string
}

type Animation struct {
	Name     string
	Loop     int // 0 无限循环
	Duration float32
	Frames   []*EventFrame
	ZOrder   ZOrderTimeline
	Bones    []*BoneTimeline
	Slots    []*SlotTimeline
	FFDs     []*FFDTimeline
}

type Tween struct {
	Type      int
	Easing    float32
	HasEasing bool // false 表示不缓动
	Curve     []mgl32.Vec2
}

type EventFrame struct {
	Duration float32
	Sound    string
	Events   []*Event
	Actions  []*Action
}

type Event struct {
	Name    string
	Bone    string
	Slot    string
	Ints    []int32
	Floats  []float32
	Strings []string
}

type ZOrderTimeline struct {
	Frames []*ZOrderFrame
}

type ZOrderFrame struct {
	Duration float32
	ZOrder   []ZOrderOffset
}

type BoneTimeline struct {
	Name   string
	Scale  float32
	Offset float32
	Frames []*BoneFrame
}

type BoneFrame struct {
	Duration  float32
	Tween     Tween
	Transform Transform
}

type SlotTimeline struct {
	Name   string
	Frames []*SlotFrame
}

type SlotFrame struct {
	Duration     float32
	Tween        Tween
	DisplayIndex int
	Color        Color
	Actions      []*Action
}

// FFDTimeline 自由变形时间轴，Name 为显示对象名字
type FFDTimeline struct {
	Name   string
	Skin   string
	Slot   string
	Frames []*FFDFrame
}

type FFDFrame struct {
	Duration float32
	Tween    Tween
	Offset   int // 顶点列表起始偏移，可以为负
	Vertices []mgl32.Vec2
}

// 按名字线性查找，引用解析交给使用方

func (a *Armature) Bone(name string) *Bone {
	for _, bone := range a.Bones {
		if bone.Name == name {
			return bone
		}
	}
	return nil
}

func (a *Armature) Slot(name string) *Slot {
	for _, slot := range a.Slots {
		if slot.Name == name {
			return slot
		}
	}
	return nil
}

func (a *Armature) Skin(name string) *Skin {
	for _, skin := range a.Skins {
		if skin.Name == name {
			return skin
		}
	}
	return nil
}

func (a *Armature) Animation(name string) *Animation {
	for _, animation := range a.Animations {
		if animation.Name == name {
			return animation
		}
	}
	return nil
}

func (s *Skin) Slot(name string) *SkinSlot {
	for _, slot := range s.Slots {
		if slot.Name == name {
			return slot
		}
	}
	return nil
}
