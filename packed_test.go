package dragonbones

import (
	"errors"
	"github.com/go-gl/mathgl/mgl32"
	"testing"
)

func testObject(m map[string]any) object {
	return object{path: "node", m: m}
}

func floats(values ...float64) []any {
	res := make([]any, 0, len(values))
	for _, v := range values {
		res = append(res, v)
	}
	return res
}

func TestArityLaw(t *testing.T) {
	decoders := []struct {
		name   string
		arity  int
		decode func(object, string) error
	}{
		{"pairs", PairArity, func(o object, k string) error { _, err := decodePairs(o, k); return err }},
		{"weights", WeightArity, func(o object, k string) error { _, err := decodeWeights(o, k); return err }},
		{"triangles", TriangleArity, func(o object, k string) error { _, err := decodeTriangles(o, k); return err }},
		{"slotPose", SlotPoseArity, func(o object, k string) error { _, err := decodeSlotPoses(o, k); return err }},
		{"bonePose", BonePoseArity, func(o object, k string) error { _, err := decodeBonePoses(o, k); return err }},
		{"zOrder", ZOrderArity, func(o object, k string) error { _, err := decodeZOrderOffsets(o, k); return err }},
	}
	for _, dec := range decoders {
		t.Run(dec.name, func(t *testing.T) {
			for n := 0; n <= 3*dec.arity; n++ {
				values := make([]float64, n)
				for i := range values {
					values[i] = 1
				}
				err := dec.decode(testObject(map[string]any{"v": floats(values...)}), "v")
				if n%dec.arity == 0 {
					if err != nil {
						t.Errorf("len %d: unexpected error %v", n, err)
					}
					continue
				}
				var arity *ArityViolationError
				if !errors.As(err, &arity) {
					t.Fatalf("len %d: err = %v, want ArityViolationError", n, err)
				}
				if arity.Arity != dec.arity || arity.Len != n || arity.Path != "node.v" {
					t.Errorf("len %d: %+v", n, arity)
				}
			}
		})
	}
}

func TestPackedIntegerBounds(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		decode func(object, string) error
		path   string
	}{
		{"triangle above uint32", []float64{0, 1, 5e9}, func(o object, k string) error { _, err := decodeTriangles(o, k); return err }, "node.v[2]"},
		{"triangle above int32", []float64{0, 2147483648, 2}, func(o object, k string) error { _, err := decodeTriangles(o, k); return err }, "node.v[1]"},
		{"bone pose index", []float64{1e20, 1, 0, 0, 1, 0, 0}, func(o object, k string) error { _, err := decodeBonePoses(o, k); return err }, "node.v[0]"},
		{"weight bone index", []float64{1, 3e9, 1}, func(o object, k string) error { _, err := decodeWeights(o, k); return err }, "node.v[1]"},
		{"zOrder offset", []float64{0, -3e9}, func(o object, k string) error { _, err := decodeZOrderOffsets(o, k); return err }, "node.v[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(testObject(map[string]any{"v": floats(tt.values...)}), "v")
			var shape *ShapeMismatchError
			if !errors.As(err, &shape) || shape.Path != tt.path {
				t.Errorf("err = %v, want ShapeMismatchError at %s", err, tt.path)
			}
		})
	}

	// 超过 float32 精度的下标原样保留
	triangles, err := decodeTriangles(testObject(map[string]any{"v": floats(16777217, 0, 1)}), "v")
	if err != nil {
		t.Fatal(err)
	}
	if triangles[0] != (Triangle{16777217, 0, 1}) {
		t.Errorf("triangles = %v", triangles)
	}
	poses, err := decodeBonePoses(testObject(map[string]any{"v": floats(16777217, 1, 0, 0, 1, 0, 0)}), "v")
	if err != nil || poses[0].Bone != 16777217 {
		t.Errorf("bone pose = %v %v", poses, err)
	}
}

func TestDecodePairs(t *testing.T) {
	pairs, err := decodePairs(testObject(map[string]any{"v": floats(1, 2, 3, 4)}), "v")
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 || pairs[0] != (mgl32.Vec2{1, 2}) || pairs[1] != (mgl32.Vec2{3, 4}) {
		t.Errorf("pairs = %v", pairs)
	}
	pairs, err = decodePairs(testObject(map[string]any{}), "v")
	if err != nil || pairs == nil || len(pairs) != 0 {
		t.Errorf("absent pairs = %v %v", pairs, err)
	}
	_, err = decodePairs(testObject(map[string]any{"v": []any{1.0, "2"}}), "v")
	var shape *ShapeMismatchError
	if !errors.As(err, &shape) || shape.Path != "node.v[1]" {
		t.Errorf("err = %v", err)
	}
}

func TestDecodeWeights(t *testing.T) {
	weights, err := decodeWeights(testObject(map[string]any{"w": floats(2, 0, 0.25, 2, 3, 0.75)}), "w")
	if err != nil {
		t.Fatal(err)
	}
	want := []Weight{{BoneCount: 2, Bone: 0, Weight: 0.25}, {BoneCount: 2, Bone: 3, Weight: 0.75}}
	for i := range want {
		if weights[i] != want[i] {
			t.Errorf("weights[%d] = %+v, want %+v", i, weights[i], want[i])
		}
	}
	_, err = decodeWeights(testObject(map[string]any{"w": floats(1, 0.5, 1)}), "w")
	var shape *ShapeMismatchError
	if !errors.As(err, &shape) || shape.Path != "node.w[1]" {
		t.Errorf("fractional bone index err = %v", err)
	}
}

func TestDecodePoses(t *testing.T) {
	o := testObject(map[string]any{
		"slot": floats(1, 2, 3, 4, 5, 6),
		"bone": floats(3, 1, 2, 3, 4, 5, 6),
	})
	slotPoses, err := decodeSlotPoses(o, "slot")
	if err != nil {
		t.Fatal(err)
	}
	bonePoses, err := decodeBonePoses(o, "bone")
	if err != nil {
		t.Fatal(err)
	}
	want := mgl32.Mat3{1, 2, 0, 3, 4, 0, 5, 6, 1}
	if !slotPoses[0].ApproxEqual(want) {
		t.Errorf("slot pose = %v", slotPoses[0])
	}
	if bonePoses[0].Bone != 3 || !bonePoses[0].Matrix.ApproxEqual(want) {
		t.Errorf("bone pose = %+v", bonePoses[0])
	}
	// 平移分量作用在点上
	p := want.Mul3x1(mgl32.Vec3{0, 0, 1})
	if p.X() != 5 || p.Y() != 6 {
		t.Errorf("translation = %v", p)
	}
	if affineValues(want) != [6]float32{1, 2, 3, 4, 5, 6} {
		t.Errorf("affine values = %v", affineValues(want))
	}
}

func TestDecodeTrianglesAndZOrder(t *testing.T) {
	triangles, err := decodeTriangles(testObject(map[string]any{"t": floats(0, 1, 2, 2, 3, 0)}), "t")
	if err != nil {
		t.Fatal(err)
	}
	if triangles[1] != (Triangle{2, 3, 0}) {
		t.Errorf("triangles = %v", triangles)
	}
	if _, err := decodeTriangles(testObject(map[string]any{"t": floats(0, -1, 2)}), "t"); err == nil {
		t.Error("negative index accepted")
	}
	offsets, err := decodeZOrderOffsets(testObject(map[string]any{"z": floats(0, 2, 3, -1)}), "z")
	if err != nil {
		t.Fatal(err)
	}
	if offsets[0] != (ZOrderOffset{Slot: 0, Offset: 2}) || offsets[1] != (ZOrderOffset{Slot: 3, Offset: -1}) {
		t.Errorf("offsets = %v", offsets)
	}
}

func TestTransformScaleOffsetAsymmetry(t *testing.T) {
	for _, m := range []map[string]any{
		{},
		{"transform": map[string]any{}},
		{"transform": nil},
	} {
		transform, err := decodeTransform(testObject(m), "transform")
		if err != nil {
			t.Fatal(err)
		}
		if transform.Scale != (mgl32.Vec2{1, 1}) {
			t.Errorf("%v: scale = %v, want 1 1", m, transform.Scale)
		}
		if transform.Pos != (mgl32.Vec2{}) || transform.Skew != (mgl32.Vec2{}) {
			t.Errorf("%v: offset = %v skew = %v, want zero", m, transform.Pos, transform.Skew)
		}
	}
	transform, err := decodeTransform(testObject(map[string]any{"transform": map[string]any{"scY": 0.0, "skX": 90}}), "transform")
	if err != nil {
		t.Fatal(err)
	}
	if transform.Scale != (mgl32.Vec2{1, 0}) || transform.Skew[0] != 90 {
		t.Errorf("transform = %+v", transform)
	}
}

func TestDecodeColor(t *testing.T) {
	color, err := decodeColor(testObject(map[string]any{}), "color")
	if err != nil || color != DefaultColor {
		t.Fatalf("color = %+v %v", color, err)
	}
	if color.AM != 100 || color.AO != 0 {
		t.Errorf("color = %+v", color)
	}
	color, err = decodeColor(testObject(map[string]any{"color": map[string]any{"gM": 20, "bO": 255}}), "color")
	if err != nil {
		t.Fatal(err)
	}
	if color.GM != 20 || color.BO != 255 || color.RM != 100 || color.RO != 0 {
		t.Errorf("color = %+v", color)
	}
}

func TestDecodePivot(t *testing.T) {
	tests := []struct {
		node map[string]any
		want mgl32.Vec2
	}{
		{map[string]any{}, mgl32.Vec2{0.5, 0.5}},
		{map[string]any{"pivot": floats(0, 1)}, mgl32.Vec2{0, 1}},
		{map[string]any{"pivot": map[string]any{"x": 0.0}}, mgl32.Vec2{0, 0.5}},
	}
	for _, tt := range tests {
		pivot, err := decodePivot(testObject(tt.node), "pivot")
		if err != nil {
			t.Fatal(err)
		}
		if pivot != tt.want {
			t.Errorf("pivot(%v) = %v, want %v", tt.node, pivot, tt.want)
		}
	}
	var arity *ArityViolationError
	if _, err := decodePivot(testObject(map[string]any{"pivot": floats(0, 1, 2, 3)}), "pivot"); !errors.As(err, &arity) {
		t.Errorf("err = %v, want ArityViolationError", err)
	}
	var shape *ShapeMismatchError
	if _, err := decodePivot(testObject(map[string]any{"pivot": "center"}), "pivot"); !errors.As(err, &shape) {
		t.Errorf("err = %v, want ShapeMismatchError", err)
	}
}
