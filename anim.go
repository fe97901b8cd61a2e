package dragonbones

func decodeAnimation(o object) (*Animation, error) {
	res := &Animation{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	if res.Loop, err = o.count("loop", DefaultLoop); err != nil {
		return nil, err
	}
	if res.Duration, err = o.number("duration", DefaultDuration); err != nil {
		return nil, err
	}
	if res.Frames, err = decodeList(o, "frame", decodeEventFrame); err != nil {
		return nil, err
	}
	if res.ZOrder, err = decodeZOrder(o, "zOrder"); err != nil {
		return nil, err
	}
	if res.Bones, err = decodeList(o, "bone", decodeBoneTimeline); err != nil {
		return nil, err
	}
	if res.Slots, err = decodeList(o, "slot", decodeSlotTimeline); err != nil {
		return nil, err
	}
	if res.FFDs, err = decodeList(o, "ffd", decodeFFDTimeline); err != nil {
		return nil, err
	}
	return res, nil
}

// decodeTween 缓动字段平铺在帧上
func decodeTween(o object) (Tween, error) {
	res := Tween{}
	var err error
	if res.Type, err = o.count("tweenType", 0); err != nil {
		return Tween{}, err
	}
	if _, ok := o.get("tweenEasing"); ok { // null 表示不缓动
		res.HasEasing = true
		if res.Easing, err = o.number("tweenEasing", 0); err != nil {
			return Tween{}, err
		}
	}
	if res.Curve, err = decodePairs(o, "curve"); err != nil {
		return Tween{}, err
	}
	return res, nil
}

func frameDuration(o object) (float32, error) {
	return o.number("duration", DefaultDuration)
}

func decodeEventFrame(o object) (*EventFrame, error) {
	res := &EventFrame{}
	var err error
	if res.Duration, err = frameDuration(o); err != nil {
		return nil, err
	}
	if res.Sound, err = o.str("sound", ""); err != nil {
		return nil, err
	}
	if res.Events, err = decodeList(o, "events", decodeEvent); err != nil {
		return nil, err
	}
	if res.Actions, err = decodeActions(o, "actions"); err != nil {
		return nil, err
	}
	return res, nil
}

func decodeEvent(o object) (*Event, error) {
	res := &Event{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	if res.Bone, err = o.str("bone", ""); err != nil {
		return nil, err
	}
	if res.Slot, err = o.str("slot", ""); err != nil {
		return nil, err
	}
	if res.Ints, err = o.ints("ints"); err != nil {
		return nil, err
	}
	if res.Floats, err = o.numbers("floats"); err != nil {
		return nil, err
	}
	if res.Strings, err = o.strs("strings"); err != nil {
		return nil, err
	}
	return res, nil
}

// decodeZOrder 深度时间轴是单个对象 {frame: [...]}
func decodeZOrder(o object, key string) (ZOrderTimeline, error) {
	res := ZOrderTimeline{Frames: []*ZOrderFrame{}}
	node, ok, err := o.child(key)
	if err != nil || !ok {
		return res, err
	}
	res.Frames, err = decodeList(node, "frame", func(frame object) (*ZOrderFrame, error) {
		temp := &ZOrderFrame{}
		var err error
		if temp.Duration, err = frameDuration(frame); err != nil {
			return nil, err
		}
		if temp.ZOrder, err = decodeZOrderOffsets(frame, "zOrder"); err != nil {
			return nil, err
		}
		return temp, nil
	})
	if err != nil {
		return ZOrderTimeline{}, err
	}
	return res, nil
}

func decodeBoneTimeline(o object) (*BoneTimeline, error) {
	res := &BoneTimeline{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	if res.Scale, err = o.number("scale", DefaultTimelineScale); err != nil {
		return nil, err
	}
	if res.Offset, err = o.number("offset", DefaultTimelineOffset); err != nil {
		return nil, err
	}
	res.Frames, err = decodeList(o, "frame", func(frame object) (*BoneFrame, error) {
		temp := &BoneFrame{}
		var err error
		if temp.Duration, err = frameDuration(frame); err != nil {
			return nil, err
		}
		if temp.Tween, err = decodeTween(frame); err != nil {
			return nil, err
		}
		if temp.Transform, err = decodeTransform(frame, "transform"); err != nil {
			return nil, err
		}
		return temp, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func decodeSlotTimeline(o object) (*SlotTimeline, error) {
	res := &SlotTimeline{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	res.Frames, err = decodeList(o, "frame", func(frame object) (*SlotFrame, error) {
		temp := &SlotFrame{}
		var err error
		if temp.Duration, err = frameDuration(frame); err != nil {
			return nil, err
		}
		if temp.Tween, err = decodeTween(frame); err != nil {
			return nil, err
		}
		if temp.DisplayIndex, err = frame.integer("displayIndex", DefaultDisplayIndex); err != nil {
			return nil, err
		}
		if temp.Color, err = decodeColor(frame, "color"); err != nil {
			return nil, err
		}
		if temp.Actions, err = decodeActions(frame, "actions"); err != nil {
			return nil, err
		}
		return temp, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func decodeFFDTimeline(o object) (*FFDTimeline, error) {
	res := &FFDTimeline{}
	var err error
	if res.Name, err = o.requireStr("name"); err != nil {
		return nil, err
	}
	if res.Slot, err = o.requireStr("slot"); err != nil {
		return nil, err
	}
	if res.Skin, err = o.str("skin", ""); err != nil {
		return nil, err
	}
	res.Frames, err = decodeList(o, "frame", func(frame object) (*FFDFrame, error) {
		temp := &FFDFrame{}
		var err error
		if temp.Duration, err = frameDuration(frame); err != nil {
			return nil, err
		}
		if temp.Tween, err = decodeTween(frame); err != nil {
			return nil, err
		}
		if temp.Offset, err = frame.integer("offset", 0); err != nil {
			return nil, err
		}
		if temp.Vertices, err = decodePairs(frame, "vertices"); err != nil {
			return nil, err
		}
		return temp, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
