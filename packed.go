package dragonbones

import "github.com/go-gl/mathgl/mgl32"

const (
	PairArity     = 2 // x y
	WeightArity   = 3 // boneCount boneIndex weight
	TriangleArity = 3
	SlotPoseArity = 6 // a b c d tx ty
	BonePoseArity = 7 // boneIndex a b c d tx ty
	ZOrderArity   = 2 // slotIndex offset
)

// Weight 顶点受某个骨骼影响的权重
type Weight struct {
	BoneCount int
	Bone      int
	Weight    float32
}

// BonePose 蒙皮时骨骼的注册矩阵
type BonePose struct {
	Bone   int
	Matrix mgl32.Mat3
}

type Triangle [3]uint32

type ZOrderOffset struct {
	Slot   int
	Offset int
}

// packed 读取扁平数字数组并校验长度，缺失时返回空
func packed(o object, key string, arity int) ([]float64, error) {
	values, err := o.float64s(key)
	if err != nil {
		return nil, err
	}
	if len(values)%arity != 0 {
		return nil, &ArityViolationError{Path: o.at(key), Arity: arity, Len: len(values)}
	}
	return values, nil
}

// 元组中作为下标的元素必须是 int32 范围内的非负整数
func packedIndex(o object, key string, value float64, i int) (int, error) {
	if !isInt32(value) || value < 0 {
		return 0, &ShapeMismatchError{Path: indexPath(o.at(key), i), Expected: "non-negative integer", Actual: KindNumber}
	}
	return int(value), nil
}

func packedInt(o object, key string, value float64, i int) (int, error) {
	if !isInt32(value) {
		return 0, &ShapeMismatchError{Path: indexPath(o.at(key), i), Expected: "integer", Actual: KindNumber}
	}
	return int(value), nil
}

func decodePairs(o object, key string) ([]mgl32.Vec2, error) {
	values, err := packed(o, key, PairArity)
	if err != nil {
		return nil, err
	}
	res := make([]mgl32.Vec2, 0, len(values)/PairArity)
	for i := 0; i < len(values); i += PairArity {
		res = append(res, mgl32.Vec2{float32(values[i]), float32(values[i+1])})
	}
	return res, nil
}

func decodeWeights(o object, key string) ([]Weight, error) {
	values, err := packed(o, key, WeightArity)
	if err != nil {
		return nil, err
	}
	res := make([]Weight, 0, len(values)/WeightArity)
	for i := 0; i < len(values); i += WeightArity {
		count, err := packedIndex(o, key, values[i], i)
		if err != nil {
			return nil, err
		}
		bone, err := packedIndex(o, key, values[i+1], i+1)
		if err != nil {
			return nil, err
		}
		res = append(res, Weight{BoneCount: count, Bone: bone, Weight: float32(values[i+2])})
	}
	return res, nil
}

func decodeTriangles(o object, key string) ([]Triangle, error) {
	values, err := packed(o, key, TriangleArity)
	if err != nil {
		return nil, err
	}
	res := make([]Triangle, 0, len(values)/TriangleArity)
	for i := 0; i < len(values); i += TriangleArity {
		temp := Triangle{}
		for j := 0; j < TriangleArity; j++ {
			idx, err := packedIndex(o, key, values[i+j], i+j)
			if err != nil {
				return nil, err
			}
			temp[j] = uint32(idx)
		}
		res = append(res, temp)
	}
	return res, nil
}

// affine [a b c d tx ty] 列主序放进 Mat3
func affine(values []float64) mgl32.Mat3 {
	return mgl32.Mat3{
		float32(values[0]), float32(values[1]), 0,
		float32(values[2]), float32(values[3]), 0,
		float32(values[4]), float32(values[5]), 1,
	}
}

func affineValues(m mgl32.Mat3) [6]float32 {
	return [6]float32{m[0], m[1], m[3], m[4], m[6], m[7]}
}

func decodeSlotPoses(o object, key string) ([]mgl32.Mat3, error) {
	values, err := packed(o, key, SlotPoseArity)
	if err != nil {
		return nil, err
	}
	res := make([]mgl32.Mat3, 0, len(values)/SlotPoseArity)
	for i := 0; i < len(values); i += SlotPoseArity {
		res = append(res, affine(values[i:i+SlotPoseArity]))
	}
	return res, nil
}

func decodeBonePoses(o object, key string) ([]BonePose, error) {
	values, err := packed(o, key, BonePoseArity)
	if err != nil {
		return nil, err
	}
	res := make([]BonePose, 0, len(values)/BonePoseArity)
	for i := 0; i < len(values); i += BonePoseArity {
		bone, err := packedIndex(o, key, values[i], i)
		if err != nil {
			return nil, err
		}
		res = append(res, BonePose{Bone: bone, Matrix: affine(values[i+1 : i+BonePoseArity])})
	}
	return res, nil
}

func decodeZOrderOffsets(o object, key string) ([]ZOrderOffset, error) {
	values, err := packed(o, key, ZOrderArity)
	if err != nil {
		return nil, err
	}
	res := make([]ZOrderOffset, 0, len(values)/ZOrderArity)
	for i := 0; i < len(values); i += ZOrderArity {
		slot, err := packedIndex(o, key, values[i], i)
		if err != nil {
			return nil, err
		}
		offset, err := packedInt(o, key, values[i+1], i+1) // 偏移可以为负
		if err != nil {
			return nil, err
		}
		res = append(res, ZOrderOffset{Slot: slot, Offset: offset})
	}
	return res, nil
}

// decodeTransform 缺失的字段取默认值，缩放默认 1
func decodeTransform(o object, key string) (Transform, error) {
	res := DefaultTransform
	node, ok, err := o.child(key)
	if err != nil || !ok {
		return res, err
	}
	fields := []struct {
		key   string
		value *float32
	}{
		{"x", &res.Pos[0]}, {"y", &res.Pos[1]},
		{"skX", &res.Skew[0]}, {"skY", &res.Skew[1]},
		{"scX", &res.Scale[0]}, {"scY", &res.Scale[1]},
	}
	for _, field := range fields {
		if *field.value, err = node.number(field.key, *field.value); err != nil {
			return Transform{}, err
		}
	}
	return res, nil
}

func decodeColor(o object, key string) (Color, error) {
	res := DefaultColor
	node, ok, err := o.child(key)
	if err != nil || !ok {
		return res, err
	}
	fields := []struct {
		key   string
		value *float32
	}{
		{"aM", &res.AM}, {"rM", &res.RM}, {"gM", &res.GM}, {"bM", &res.BM},
		{"aO", &res.AO}, {"rO", &res.RO}, {"gO", &res.GO}, {"bO", &res.BO},
	}
	for _, field := range fields {
		if *field.value, err = node.number(field.key, *field.value); err != nil {
			return Color{}, err
		}
	}
	return res, nil
}

// decodePivot 支持 [x, y] 与 {x, y} 两种写法，默认中心点
func decodePivot(o object, key string) (mgl32.Vec2, error) {
	v, ok := o.get(key)
	if !ok {
		return DefaultPivot, nil
	}
	if _, isList := v.([]any); isList {
		values, err := packed(o, key, PairArity)
		if err != nil {
			return mgl32.Vec2{}, err
		}
		if len(values) != PairArity {
			return mgl32.Vec2{}, &ArityViolationError{Path: o.at(key), Arity: PairArity, Len: len(values)}
		}
		return mgl32.Vec2{float32(values[0]), float32(values[1])}, nil
	}
	node, err := asObject(v, o.at(key))
	if err != nil {
		return mgl32.Vec2{}, shapeErr(o.at(key), "array or object", v)
	}
	res := DefaultPivot
	if res[0], err = node.number("x", res[0]); err != nil {
		return mgl32.Vec2{}, err
	}
	if res[1], err = node.number("y", res[1]); err != nil {
		return mgl32.Vec2{}, err
	}
	return res, nil
}
