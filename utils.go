package dragonbones

import (
	"encoding/json"
	"fmt"
	"math"
)

// NodeKind 通用结构树的节点类型
type NodeKind uint8

const (
	KindNull    NodeKind = 0
	KindBoolean NodeKind = 1
	KindNumber  NodeKind = 2
	KindString  NodeKind = 3
	KindArray   NodeKind = 4
	KindObject  NodeKind = 5
	KindOther   NodeKind = 6
)

func (k NodeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

func kindOf(node any) NodeKind {
	switch node.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, float32, int, int32, int64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindOther
	}
}

func toNumber(node any) (float64, bool) {
	switch v := node.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt 只接受 int32 范围内的整数，超出范围视为类型错误
func toInt(node any) (int, bool) {
	f, ok := toNumber(node)
	if !ok || !isInt32(f) {
		return 0, false
	}
	return int(f), true
}

func isInt32(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func shapeErr(path, expected string, node any) error {
	return &ShapeMismatchError{Path: path, Expected: expected, Actual: kindOf(node)}
}

// object 带路径的对象节点，null 与缺失同样处理
type object struct {
	path string
	m    map[string]any
}

func asObject(node any, path string) (object, error) {
	m, ok := node.(map[string]any)
	if !ok {
		return object{}, shapeErr(path, "object", node)
	}
	return object{path: path, m: m}, nil
}

func (o object) at(key string) string {
	return joinPath(o.path, key)
}

func (o object) get(key string) (any, bool) {
	v, ok := o.m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (o object) missing(key string) error {
	return &MissingFieldError{Path: o.path, Field: key}
}

func (o object) str(key, def string) (string, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", shapeErr(o.at(key), "string", v)
	}
	return s, nil
}

func (o object) requireStr(key string) (string, error) {
	if _, ok := o.get(key); !ok {
		return "", o.missing(key)
	}
	return o.str(key, "")
}

func (o object) number(key string, def float32) (float32, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	f, ok := toNumber(v)
	if !ok {
		return 0, shapeErr(o.at(key), "number", v)
	}
	return float32(f), nil
}

func (o object) requireNumber(key string) (float32, error) {
	if _, ok := o.get(key); !ok {
		return 0, o.missing(key)
	}
	return o.number(key, 0)
}

func (o object) integer(key string, def int) (int, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	i, ok := toInt(v)
	if !ok {
		return 0, shapeErr(o.at(key), "integer", v)
	}
	return i, nil
}

// count 用于循环次数、骨骼链长度这类不能为负的字段
func (o object) count(key string, def int) (int, error) {
	i, err := o.integer(key, def)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, shapeErr(o.at(key), "non-negative integer", o.m[key])
	}
	return i, nil
}

func (o object) boolean(key string, def bool) (bool, error) {
	v, ok := o.get(key)
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, shapeErr(o.at(key), "boolean", v)
	}
	return b, nil
}

// list 缺失返回 nil
func (o object) list(key string) ([]any, error) {
	v, ok := o.get(key)
	if !ok {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, shapeErr(o.at(key), "array", v)
	}
	return items, nil
}

// child 可选子对象，缺失时 ok 为 false
func (o object) child(key string) (object, bool, error) {
	v, ok := o.get(key)
	if !ok {
		return object{}, false, nil
	}
	res, err := asObject(v, o.at(key))
	return res, err == nil, err
}

// decodeList 按原顺序逐个解码对象数组，缺失时返回空切片
func decodeList[T any](o object, key string, decode func(object) (T, error)) ([]T, error) {
	items, err := o.list(key)
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, len(items))
	for i, item := range items {
		obj, err := asObject(item, indexPath(o.at(key), i))
		if err != nil {
			return nil, err
		}
		value, err := decode(obj)
		if err != nil {
			return nil, err
		}
		res = append(res, value)
	}
	return res, nil
}

// float64s 数字数组，保留 float64 精度，下标类的元素需要
func (o object) float64s(key string) ([]float64, error) {
	items, err := o.list(key)
	if err != nil {
		return nil, err
	}
	res := make([]float64, 0, len(items))
	for i, item := range items {
		f, ok := toNumber(item)
		if !ok {
			return nil, shapeErr(indexPath(o.at(key), i), "number", item)
		}
		res = append(res, f)
	}
	return res, nil
}

func (o object) numbers(key string) ([]float32, error) {
	values, err := o.float64s(key)
	if err != nil {
		return nil, err
	}
	res := make([]float32, 0, len(values))
	for _, v := range values {
		res = append(res, float32(v))
	}
	return res, nil
}

func (o object) ints(key string) ([]int32, error) {
	items, err := o.list(key)
	if err != nil {
		return nil, err
	}
	res := make([]int32, 0, len(items))
	for i, item := range items {
		v, ok := toInt(item)
		if !ok {
			return nil, shapeErr(indexPath(o.at(key), i), "integer", item)
		}
		res = append(res, int32(v))
	}
	return res, nil
}

func (o object) strs(key string) ([]string, error) {
	items, err := o.list(key)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, shapeErr(indexPath(o.at(key), i), "string", item)
		}
		res = append(res, s)
	}
	return res, nil
}

// cloneNode 深拷贝，解码结果不和输入树共享可变数据
func cloneNode(node any) any {
	switch v := node.(type) {
	case map[string]any:
		return cloneObject(v)
	case []any:
		res := make([]any, len(v))
		for i, item := range v {
			res[i] = cloneNode(item)
		}
		return res
	default:
		return v
	}
}

func cloneObject(m map[string]any) map[string]any {
	res := make(map[string]any, len(m))
	for k, item := range m {
		res[k] = cloneNode(item)
	}
	return res
}
