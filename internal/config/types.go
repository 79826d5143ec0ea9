package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/linkds/internal/ptr"
)

type cloner[T any] interface {
	Clone() T
}

// merger is implemented by every option section: fields set in overrides
// replace the receiver's, nil fields keep them.
type merger[T any] interface {
	cloner[T]
	Merge(overrides T) T
}

// ┌─────────────────┐
// │ GENERAL OPTIONS │
// └─────────────────┘
var _ merger[*GeneralOptions] = (*GeneralOptions)(nil)

type GeneralOptions struct {
	LogLevel *zerolog.Level `toml:"log-level"`
	Silent   *bool          `toml:"silent"`
}

func (o *GeneralOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type general config")
	}

	o.Silent = findFrom(m, "silent", parseBoolFn(), &err)
	if p := findFrom(m, "log-level", parseStringFn(checkLogLevel), &err); isOk(p, err) {
		o.LogLevel = ptr.FromValue(MustParseLogLevel(*p))
	}

	return err
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}

	return &GeneralOptions{
		LogLevel: ptr.Clone(o.LogLevel),
		Silent:   ptr.Clone(o.Silent),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GeneralOptions{
		LogLevel: ptr.CloneOr(overrides.LogLevel, origin.LogLevel),
		Silent:   ptr.CloneOr(overrides.Silent, origin.Silent),
	}
}

// ┌──────────────┐
// │ TREE OPTIONS │
// └──────────────┘
var _ merger[*TreeOptions] = (*TreeOptions)(nil)

// TreeOptions lists the values the driver inserts into and searches in
// the tree, in order.
type TreeOptions struct {
	Insert []int `toml:"insert"`
	Search []int `toml:"search"`
}

func (o *TreeOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type tree config")
	}

	o.Insert = findSliceFrom(m, "insert", parseIntFn(checkNothing[int]), &err)
	o.Search = findSliceFrom(m, "search", parseIntFn(checkNothing[int]), &err)

	return err
}

func (o *TreeOptions) Clone() *TreeOptions {
	if o == nil {
		return nil
	}

	return &TreeOptions{
		Insert: ptr.CloneSliceOr(o.Insert, nil),
		Search: ptr.CloneSliceOr(o.Search, nil),
	}
}

func (origin *TreeOptions) Merge(overrides *TreeOptions) *TreeOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &TreeOptions{
		Insert: ptr.CloneSliceOr(overrides.Insert, origin.Insert),
		Search: ptr.CloneSliceOr(overrides.Search, origin.Search),
	}
}

// ┌──────────────┐
// │ LIST OPTIONS │
// └──────────────┘
var _ merger[*ListOptions] = (*ListOptions)(nil)

// ListOptions describes the driver's list workload: Push calls to
// PushBack(Value), then Pop calls to PopFront.
type ListOptions struct {
	Value *int `toml:"value"`
	Push  *int `toml:"push"`
	Pop   *int `toml:"pop"`
}

func (o *ListOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type list config")
	}

	o.Value = findFrom(m, "value", parseIntFn(checkNothing[int]), &err)
	o.Push = findFrom(m, "push", parseIntFn(checkCount), &err)
	o.Pop = findFrom(m, "pop", parseIntFn(checkCount), &err)

	return err
}

func (o *ListOptions) Clone() *ListOptions {
	if o == nil {
		return nil
	}

	return &ListOptions{
		Value: ptr.Clone(o.Value),
		Push:  ptr.Clone(o.Push),
		Pop:   ptr.Clone(o.Pop),
	}
}

func (origin *ListOptions) Merge(overrides *ListOptions) *ListOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &ListOptions{
		Value: ptr.CloneOr(overrides.Value, origin.Value),
		Push:  ptr.CloneOr(overrides.Push, origin.Push),
		Pop:   ptr.CloneOr(overrides.Pop, origin.Pop),
	}
}
