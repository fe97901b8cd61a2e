package dragonbones

import (
	"encoding/json"
	"github.com/Masterminds/semver/v3"
	"github.com/go-gl/mathgl/mgl32"
)

// Encode 把 Document 还原为通用结构树，数字统一为 float64，与 encoding/json 的结果一致
// Decode(Encode(doc)) 与 doc 相等，版本为 nil 时不输出该字段
func Encode(doc *Document) map[string]any {
	res := map[string]any{
		"name":      doc.Name,
		"frameRate": float64(doc.FrameRate),
		"armature":  encodeList(doc.Armatures, encodeArmature),
	}
	putVersion(res, "version", doc.Version)
	putVersion(res, "compatibleVersion", doc.CompatibleVersion)
	putUserData(res, doc.UserData)
	return res
}

func putVersion(m map[string]any, key string, version *semver.Version) {
	if version != nil {
		m[key] = version.Original()
	}
}

func Marshal(doc *Document) ([]byte, error) {
	return json.Marshal(Encode(doc))
}

func encodeList[T any](items []T, encode func(T) map[string]any) []any {
	res := make([]any, 0, len(items))
	for _, item := range items {
		res = append(res, encode(item))
	}
	return res
}

func putUserData(m map[string]any, data any) {
	if data != nil {
		m["userData"] = cloneNode(data)
	}
}

func encodeArmature(a *Armature) map[string]any {
	res := map[string]any{
		"name":           a.Name,
		"frameRate":      float64(a.FrameRate),
		"type":           a.Type.String(),
		"defaultActions": encodeActions(a.DefaultActions),
		"bone":           encodeList(a.Bones, encodeBone),
		"slot":           encodeList(a.Slots, encodeSlot),
		"skin":           encodeList(a.Skins, encodeSkin),
		"ik":             encodeList(a.Iks, encodeIk),
		"animation":      encodeList(a.Animations, encodeAnimation),
	}
	putUserData(res, a.UserData)
	return res
}

func encodeBone(b *Bone) map[string]any {
	res := map[string]any{
		"name":      b.Name,
		"parent":    b.Parent,
		"length":    float64(b.Length),
		"transform": encodeTransform(b.Transform),
	}
	putUserData(res, b.UserData)
	return res
}

func encodeSlot(s *Slot) map[string]any {
	res := map[string]any{
		"name":         s.Name,
		"parent":       s.Parent,
		"displayIndex": float64(s.DisplayIndex),
		"blendMode":    s.BlendMode,
		"color":        encodeColor(s.Color),
		"actions":      encodeActions(s.Actions),
	}
	putUserData(res, s.UserData)
	return res
}

func encodeSkin(s *Skin) map[string]any {
	return map[string]any{
		"name": s.Name,
		"slot": encodeList(s.Slots, func(slot *SkinSlot) map[string]any {
			return map[string]any{
				"name":    slot.Name,
				"display": encodeList(slot.Displays, encodeDisplay),
			}
		}),
	}
}

func encodeDisplay(d *Display) map[string]any {
	if d.Type == DisplayUnknown {
		return cloneObject(d.Raw)
	}
	subType := d.SubType.String()
	if d.SubType == BoundBoxUnknown {
		subType = d.SubTypeTag
	}
	res := map[string]any{
		"name":       d.Name,
		"type":       d.Type.String(),
		"path":       d.Path,
		"share":      d.Share,
		"inheritFDD": d.InheritFFD,
		"subType":    subType,
		"color":      float64(d.Color),
		"transform":  encodeTransform(d.Transform),
		"pivot":      encodePairs([]mgl32.Vec2{d.Pivot}),
		"width":      float64(d.Width),
		"height":     float64(d.Height),
	}
	if d.hasVertices() {
		res["vertices"] = encodePairs(d.Vertices)
	}
	if d.IsMesh() {
		res["uvs"] = encodePairs(d.UVs)
		res["triangles"] = encodeTriangles(d.Triangles)
		res["weights"] = encodeWeights(d.Weights)
		res["slotPose"] = encodeSlotPoses(d.SlotPose)
		res["bonePose"] = encodeBonePoses(d.BonePose)
	}
	return res
}

func encodeIk(ik *Ik) map[string]any {
	return map[string]any{
		"name":         ik.Name,
		"bone":         ik.Bone,
		"target":       ik.Target,
		"bendPositive": ik.BendPositive,
		"chain":        float64(ik.Chain),
		"weight":       float64(ik.Weight),
	}
}

func encodeAnimation(a *Animation) map[string]any {
	return map[string]any{
		"name":     a.Name,
		"loop":     float64(a.Loop),
		"duration": float64(a.Duration),
		"frame":    encodeList(a.Frames, encodeEventFrame),
		"zOrder": map[string]any{
			"frame": encodeList(a.ZOrder.Frames, func(frame *ZOrderFrame) map[string]any {
				return map[string]any{
					"duration": float64(frame.Duration),
					"zOrder":   encodeZOrderOffsets(frame.ZOrder),
				}
			}),
		},
		"bone": encodeList(a.Bones, func(timeline *BoneTimeline) map[string]any {
			return map[string]any{
				"name":   timeline.Name,
				"scale":  float64(timeline.Scale),
				"offset": float64(timeline.Offset),
				"frame": encodeList(timeline.Frames, func(frame *BoneFrame) map[string]any {
					res := encodeTween(frame.Duration, frame.Tween)
					res["transform"] = encodeTransform(frame.Transform)
					return res
				}),
			}
		}),
		"slot": encodeList(a.Slots, func(timeline *SlotTimeline) map[string]any {
			return map[string]any{
				"name": timeline.Name,
				"frame": encodeList(timeline.Frames, func(frame *SlotFrame) map[string]any {
					res := encodeTween(frame.Duration, frame.Tween)
					res["displayIndex"] = float64(frame.DisplayIndex)
					res["color"] = encodeColor(frame.Color)
					res["actions"] = encodeActions(frame.Actions)
					return res
				}),
			}
		}),
		"ffd": encodeList(a.FFDs, func(timeline *FFDTimeline) map[string]any {
			return map[string]any{
				"name": timeline.Name,
				"skin": timeline.Skin,
				"slot": timeline.Slot,
				"frame": encodeList(timeline.Frames, func(frame *FFDFrame) map[string]any {
					res := encodeTween(frame.Duration, frame.Tween)
					res["offset"] = float64(frame.Offset)
					res["vertices"] = encodePairs(frame.Vertices)
					return res
				}),
			}
		}),
	}
}

func encodeEventFrame(frame *EventFrame) map[string]any {
	return map[string]any{
		"duration": float64(frame.Duration),
		"sound":    frame.Sound,
		"events": encodeList(frame.Events, func(event *Event) map[string]any {
			ints := make([]any, 0, len(event.Ints))
			for _, v := range event.Ints {
				ints = append(ints, float64(v))
			}
			strs := make([]any, 0, len(event.Strings))
			for _, v := range event.Strings {
				strs = append(strs, v)
			}
			return map[string]any{
				"name":    event.Name,
				"bone":    event.Bone,
				"slot":    event.Slot,
				"ints":    ints,
				"floats":  encodeNumbers(event.Floats),
				"strings": strs,
			}
		}),
		"actions": encodeActions(frame.Actions),
	}
}

// encodeTween 缓动字段和帧长度平铺在同一层
func encodeTween(duration float32, tween Tween) map[string]any {
	res := map[string]any{
		"duration":  float64(duration),
		"tweenType": float64(tween.Type),
		"curve":     encodePairs(tween.Curve),
	}
	if tween.HasEasing {
		res["tweenEasing"] = float64(tween.Easing)
	}
	return res
}

func encodeActions(actions []*Action) []any {
	res := make([]any, 0, len(actions))
	for _, action := range actions {
		res = append(res, []any{action.Type, action.Name})
	}
	return res
}

func encodeTransform(t Transform) map[string]any {
	return map[string]any{
		"x":   float64(t.Pos[0]),
		"y":   float64(t.Pos[1]),
		"skX": float64(t.Skew[0]),
		"skY": float64(t.Skew[1]),
		"scX": float64(t.Scale[0]),
		"scY": float64(t.Scale[1]),
	}
}

func encodeColor(c Color) map[string]any {
	return map[string]any{
		"aM": float64(c.AM), "rM": float64(c.RM), "gM": float64(c.GM), "bM": float64(c.BM),
		"aO": float64(c.AO), "rO": float64(c.RO), "gO": float64(c.GO), "bO": float64(c.BO),
	}
}

func encodeNumbers(values []float32) []any {
	res := make([]any, 0, len(values))
	for _, v := range values {
		res = append(res, float64(v))
	}
	return res
}

func encodePairs(pairs []mgl32.Vec2) []any {
	res := make([]any, 0, len(pairs)*PairArity)
	for _, pair := range pairs {
		res = append(res, float64(pair[0]), float64(pair[1]))
	}
	return res
}

func encodeWeights(weights []Weight) []any {
	res := make([]any, 0, len(weights)*WeightArity)
	for _, w := range weights {
		res = append(res, float64(w.BoneCount), float64(w.Bone), float64(w.Weight))
	}
	return res
}

func encodeTriangles(triangles []Triangle) []any {
	res := make([]any, 0, len(triangles)*TriangleArity)
	for _, triangle := range triangles {
		for _, idx := range triangle {
			res = append(res, float64(idx))
		}
	}
	return res
}

func appendAffine(res []any, m mgl32.Mat3) []any {
	for _, v := range affineValues(m) {
		res = append(res, float64(v))
	}
	return res
}

func encodeSlotPoses(poses []mgl32.Mat3) []any {
	res := make([]any, 0, len(poses)*SlotPoseArity)
	for _, pose := range poses {
		res = appendAffine(res, pose)
	}
	return res
}

func encodeBonePoses(poses []BonePose) []any {
	res := make([]any, 0, len(poses)*BonePoseArity)
	for _, pose := range poses {
		res = append(res, float64(pose.Bone))
		res = appendAffine(res, pose.Matrix)
	}
	return res
}

func encodeZOrderOffsets(offsets []ZOrderOffset) []any {
	res := make([]any, 0, len(offsets)*ZOrderArity)
	for _, offset := range offsets {
		res = append(res, float64(offset.Slot), float64(offset.Offset))
	}
	return res
}
