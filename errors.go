package dragonbones

import "fmt"

// MissingFieldError 必填字段缺失
type MissingFieldError struct {
	Path  string // 所在实体路径
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("dragonbones: %s: missing required field %q", pathOrRoot(e.Path), e.Field)
}

// ShapeMismatchError 节点类型与期望不符
type ShapeMismatchError struct {
	Path     string
	Expected string
	Actual   NodeKind
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("dragonbones: %s: expected %s, got %s", pathOrRoot(e.Path), e.Expected, e.Actual)
}

// ArityViolationError 紧凑数组长度不是元组长度的整数倍，pivot 要求正好一个元组
type ArityViolationError struct {
	Path  string
	Arity int
	Len   int
}

func (e *ArityViolationError) Error() string {
	return fmt.Sprintf("dragonbones: %s: length %d violates arity %d", pathOrRoot(e.Path), e.Len, e.Arity)
}

type VersionParseError struct {
	Path string
	Raw  string
	Err  error
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("dragonbones: %s: invalid version %q: %v", pathOrRoot(e.Path), e.Raw, e.Err)
}

func (e *VersionParseError) Unwrap() error {
	return e.Err
}

// UnknownVariantError 只在 Decoder.Strict 时返回，否则回退为 unknown 变体
type UnknownVariantError struct {
	Path string
	Kind string // "display type" 或 "bound box type"
	Tag  string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("dragonbones: %s: unknown %s %q", pathOrRoot(e.Path), e.Kind, e.Tag)
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
