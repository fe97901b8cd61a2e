package dragonbones

import (
	"github.com/go-gl/mathgl/mgl32"
	"math"
)

func (d *Display) IsMesh() bool {
	return d.Type == DisplayMesh
}

// 只有 mesh 与多边形包围盒带顶点
func (d *Display) hasVertices() bool {
	return d.Type == DisplayMesh || d.Type == DisplayBoundingBox
}

func newDisplay(name string) *Display {
	return &Display{
		Name:       name,
		InheritFFD: DefaultInheritFFD,
		Transform:  DefaultTransform,
		Pivot:      DefaultPivot,
		Vertices:   []mgl32.Vec2{},
		UVs:        []mgl32.Vec2{},
		Triangles:  []Triangle{},
		Weights:    []Weight{},
		SlotPose:   []mgl32.Mat3{},
		BonePose:   []BonePose{},
	}
}

func (d *Decoder) decodeDisplay(o object) (*Display, error) {
	tag, err := o.str("type", DisplayImage.String())
	if err != nil {
		return nil, err
	}
	typ, known := displayTypeTags[tag]
	if !known {
		if err := d.unknownVariant(o.at("type"), "display type", tag); err != nil {
			return nil, err
		}
		// 扩展类型不解析任何字段，原样保留
		name, _ := o.m["name"].(string)
		res := newDisplay(name)
		res.Type = DisplayUnknown
		res.TypeTag = tag
		res.Raw = cloneObject(o.m)
		return res, nil
	}
	name, err := o.requireStr("name")
	if err != nil {
		return nil, err
	}
	res := newDisplay(name)
	res.Type = typ
	if res.Path, err = o.str("path", ""); err != nil {
		return nil, err
	}
	if res.Share, err = o.str("share", ""); err != nil {
		return nil, err
	}
	ffdKey := "inheritFDD"
	if _, ok := o.get(ffdKey); !ok {
		ffdKey = "inheritFFD"
	}
	if res.InheritFFD, err = o.boolean(ffdKey, DefaultInheritFFD); err != nil {
		return nil, err
	}
	if err = d.decodeSubType(o, res); err != nil {
		return nil, err
	}
	if res.Color, err = decodeDisplayColor(o, "color"); err != nil {
		return nil, err
	}
	if res.Transform, err = decodeTransform(o, "transform"); err != nil {
		return nil, err
	}
	if res.Pivot, err = decodePivot(o, "pivot"); err != nil {
		return nil, err
	}
	if res.Width, err = o.number("width", 0); err != nil {
		return nil, err
	}
	if res.Height, err = o.number("height", 0); err != nil {
		return nil, err
	}
	if res.hasVertices() {
		if res.Vertices, err = decodePairs(o, "vertices"); err != nil {
			return nil, err
		}
	}
	if res.IsMesh() {
		if err = decodeMesh(o, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func decodeMesh(o object, res *Display) (err error) {
	if res.UVs, err = decodePairs(o, "uvs"); err != nil {
		return err
	}
	if res.Triangles, err = decodeTriangles(o, "triangles"); err != nil {
		return err
	}
	if res.Weights, err = decodeWeights(o, "weights"); err != nil {
		return err
	}
	if res.SlotPose, err = decodeSlotPoses(o, "slotPose"); err != nil {
		return err
	}
	res.BonePose, err = decodeBonePoses(o, "bonePose")
	return err
}

func (d *Decoder) decodeSubType(o object, res *Display) error {
	tag, err := o.str("subType", BoundBoxRectangle.String())
	if err != nil {
		return err
	}
	typ, known := boundBoxTypeTags[tag]
	if !known {
		if err = d.unknownVariant(o.at("subType"), "bound box type", tag); err != nil {
			return err
		}
		typ = BoundBoxUnknown
		res.SubTypeTag = tag
	}
	res.SubType = typ
	return nil
}

// 包围盒颜色原样保留为 uint32
func decodeDisplayColor(o object, key string) (uint32, error) {
	v, ok := o.get(key)
	if !ok {
		return 0, nil
	}
	f, ok := toNumber(v)
	if !ok || f != math.Trunc(f) || f < 0 || f > math.MaxUint32 {
		return 0, shapeErr(o.at(key), "unsigned 32-bit integer", v)
	}
	return uint32(f), nil
}
