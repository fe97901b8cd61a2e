package dragonbones

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Masterminds/semver/v3"
	"log"
	"os"
	"strings"
)

var errShortVersion = errors.New("version needs at least major.minor")

// Decoder 无状态，可以并发使用
type Decoder struct {
	Logger *log.Logger // 为 nil 时不输出
	Strict bool        // 未知的 display type / subType 直接报错
}

// Decode 使用默认 Decoder 解码通用结构树
func Decode(root any) (*Document, error) {
	return (&Decoder{}).Decode(root)
}

// Unmarshal 解析 JSON 文本后解码
func Unmarshal(data []byte) (*Document, error) {
	return (&Decoder{}).Unmarshal(data)
}

func Load(path string) (*Document, error) {
	return (&Decoder{}).Load(path)
}

func (d *Decoder) Load(path string) (*Document, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dragonbones: read %s: %w", path, err)
	}
	res, err := d.Unmarshal(bs)
	if err != nil {
		return nil, fmt.Errorf("dragonbones: load %s: %w", path, err)
	}
	return res, nil
}

func (d *Decoder) Unmarshal(data []byte) (*Document, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("dragonbones: parse json: %w", err)
	}
	return d.Decode(root)
}

// Decode 遇到第一个错误立即返回，不会返回部分结果
func (d *Decoder) Decode(root any) (*Document, error) {
	o, err := asObject(root, "")
	if err != nil {
		return nil, err
	}
	res := &Document{}
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	if res.Version, err = decodeVersion(o, "version", nil); err != nil {
		return nil, err
	}
	if res.CompatibleVersion, err = decodeVersion(o, "compatibleVersion", res.Version); err != nil {
		return nil, err
	}
	if res.FrameRate, err = o.requireNumber("frameRate"); err != nil {
		return nil, err
	}
	res.UserData = cloneNode(o.m["userData"])
	if res.Armatures, err = decodeList(o, "armature", d.decodeArmature); err != nil {
		return nil, err
	}
	resolveDefaults(res)
	return res, nil
}

// decodeVersion def 为 nil 时字段必填，接受 "4.5" 但不接受只有主版本号的 "5"
func decodeVersion(o object, key string, def *semver.Version) (*semver.Version, error) {
	if _, ok := o.get(key); !ok && def != nil {
		return def, nil
	}
	raw, err := o.requireStr(key)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(raw, ".") {
		return nil, &VersionParseError{Path: o.at(key), Raw: raw, Err: errShortVersion}
	}
	res, err := semver.NewVersion(raw)
	if err != nil {
		return nil, &VersionParseError{Path: o.at(key), Raw: raw, Err: err}
	}
	return res, nil
}

func (d *Decoder) unknownVariant(path, kind, tag string) error {
	if d.Strict {
		return &UnknownVariantError{Path: path, Kind: kind, Tag: tag}
	}
	if d.Logger != nil {
		d.Logger.Printf("dragonbones: %s: unknown %s %q, kept as opaque", pathOrRoot(path), kind, tag)
	}
	return nil
}

func (d *Decoder) decodeArmature(o object) (*Armature, error) {
	res := &Armature{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	// 此时还拿不到 Document 帧率，先留哨兵值
	if res.FrameRate, err = o.number("frameRate", UnsetFrameRate); err != nil {
		return nil, err
	}
	tag, err := o.str("type", AnimationArmature.String())
	if err != nil {
		return nil, err
	}
	typ, ok := animationTypeTags[tag]
	if !ok {
		return nil, &ShapeMismatchError{Path: o.at("type"), Expected: "Armature, MovieClip or Stage", Actual: KindString}
	}
	res.Type = typ
	res.UserData = cloneNode(o.m["userData"])
	if res.DefaultActions, err = decodeActions(o, "defaultActions"); err != nil {
		return nil, err
	}
	if res.Bones, err = decodeList(o, "bone", decodeBone); err != nil {
		return nil, err
	}
	if res.Slots, err = decodeList(o, "slot", decodeSlot); err != nil {
		return nil, err
	}
	if res.Skins, err = decodeList(o, "skin", d.decodeSkin); err != nil {
		return nil, err
	}
	if res.Iks, err = decodeList(o, "ik", decodeIk); err != nil {
		return nil, err
	}
	if res.Animations, err = decodeList(o, "animation", decodeAnimation); err != nil {
		return nil, err
	}
	return res, nil
}

func decodeBone(o object) (*Bone, error) {
	res := &Bone{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	if res.Parent, err = o.requireStr("parent"); err != nil {
		return nil, err
	}
	if res.Length, err = o.number("length", 0); err != nil {
		return nil, err
	}
	res.UserData = cloneNode(o.m["userData"])
	if res.Transform, err = decodeTransform(o, "transform"); err != nil {
		return nil, err
	}
	return res, nil
}

func decodeSlot(o object) (*Slot, error) {
	res := &Slot{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	if res.Parent, err = o.requireStr("parent"); err != nil {
		return nil, err
	}
	if res.DisplayIndex, err = o.integer("displayIndex", DefaultDisplayIndex); err != nil {
		return nil, err
	}
	if res.BlendMode, err = o.str("blendMode", DefaultBlendMode); err != nil {
		return nil, err
	}
	res.UserData = cloneNode(o.m["userData"])
	if res.Color, err = decodeColor(o, "color"); err != nil {
		return nil, err
	}
	if res.Actions, err = decodeActions(o, "actions"); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *Decoder) decodeSkin(o object) (*Skin, error) {
	res := &Skin{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	res.Slots, err = decodeList(o, "slot", func(slot object) (*SkinSlot, error) {
		temp := &SkinSlot{}
		var err error
		if temp.Name, err = slot.requireStr("name"); err != nil {
			return nil, err
		}
		if temp.Displays, err = decodeList(slot, "display", d.decodeDisplay); err != nil {
			return nil, err
		}
		return temp, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// decodeActions 兼容 ["gotoAndPlay", "walk"] 与 {type, name} 两种写法
func decodeActions(o object, key string) ([]*Action, error) {
	items, err := o.list(key)
	if err != nil {
		return nil, err
	}
	res := make([]*Action, 0, len(items))
	for i, item := range items {
		path := indexPath(o.at(key), i)
		action, err := decodeAction(item, path)
		if err != nil {
			return nil, err
		}
		res = append(res, action)
	}
	return res, nil
}

func decodeAction(node any, path string) (*Action, error) {
	if pair, ok := node.([]any); ok {
		if len(pair) != 2 {
			return nil, &ArityViolationError{Path: path, Arity: 2, Len: len(pair)}
		}
		res := &Action{}
		var isStr bool
		if res.Type, isStr = pair[0].(string); !isStr {
			return nil, shapeErr(indexPath(path, 0), "string", pair[0])
		}
		if res.Name, isStr = pair[1].(string); !isStr {
			return nil, shapeErr(indexPath(path, 1), "string", pair[1])
		}
		return res, nil
	}
	if _, ok := node.(map[string]any); !ok {
		return nil, shapeErr(path, "array or object", node)
	}
	o, _ := asObject(node, path)
	res := &Action{}
	var err error
	if res.Type, err = o.requireStr("type"); err != nil {
		return nil, err
	}
	if res.Name, err = o.str("name", ""); err != nil {
		return nil, err
	}
	return res, nil
}
