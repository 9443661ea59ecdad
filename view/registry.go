package view

import (
	"errors"
	"fmt"
	"reflect"

	"jsonview/serializer"
	"jsonview/utils"
)

var (
	ErrUnknownView  = errors.New("view is not registered")
	ErrUnknownField = errors.New("field does not exist on the bound type")
	ErrNotAStruct   = errors.New("views can only be bound to struct types")
	ErrTypeMismatch = errors.New("value does not match the view's bound type")
)

// Registry holds compiled views and resolves cross-view references,
// including self-references for recursive types.
type Registry struct {
	views map[string]*compiledView
}

// NewRegistry compiles every view in f against the Go types in bindings.
// bindings maps view names to sample values of the bound types; only the
// types are used. Every view must be bound, every named field must exist on
// its bound type, and every referenced view must be declared in f.
func NewRegistry(f *File, bindings map[string]any) (*Registry, error) {
	r := &Registry{views: make(map[string]*compiledView, len(f.Views))}

	// Bind pass: every view gets its struct type before any cross-view
	// reference is checked, so self- and forward-references resolve.
	for _, def := range f.Views {
		if def.Name == "" {
			return nil, errors.New("view with empty name")
		}

		if _, dup := r.views[def.Name]; dup {
			return nil, fmt.Errorf("view %q declared twice", def.Name)
		}

		sample, ok := bindings[def.Name]
		if !ok {
			return nil, fmt.Errorf("view %q: no type binding", def.Name)
		}

		t := reflect.TypeOf(sample)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		if t == nil || t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("view %q: %w", def.Name, ErrNotAStruct)
		}

		r.views[def.Name] = &compiledView{name: def.Name, typ: t}
	}

	// Compile pass: resolve fields and view references.
	for _, def := range f.Views {
		err := r.compile(def, r.views[def.Name])
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Serializer returns the compiled view as an ordinary serializer over any.
// The returned value composes with handwritten serializers like any other.
func (r *Registry) Serializer(name string) (serializer.Func[any], error) {
	cv, ok := r.views[name]
	if !ok {
		return nil, fmt.Errorf("view %q: %w", name, ErrUnknownView)
	}

	return cv.serializeInto, nil
}

// Has returns true if a view with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.views[name]
	return ok
}

// Names returns the registered view names in sorted order.
func (r *Registry) Names() []string {
	return utils.SortedKeys(r.views)
}

func (r *Registry) compile(def Def, cv *compiledView) error {
	for _, at := range def.Attrs {
		idx, err := fieldIndex(cv.typ, at.Field)
		if err != nil {
			return fmt.Errorf("view %q attr %q: %w", def.Name, at.Field, err)
		}

		cv.steps = append(cv.steps, step{kind: stepAttr, key: at.Key, index: idx})
	}

	for _, as := range def.HasOne {
		st, ft, err := r.compileAssoc(def.Name, as, cv.typ, stepHasOne)
		if err != nil {
			return err
		}

		base := derefType(ft)
		if base.Kind() != reflect.Interface && base != st.target.typ {
			return fmt.Errorf("view %q has_one %q: field type %s is not view %q type %s",
				def.Name, as.Field, ft, as.View, st.target.typ)
		}

		cv.steps = append(cv.steps, st)
	}

	for _, as := range def.HasMany {
		st, ft, err := r.compileAssoc(def.Name, as, cv.typ, stepHasMany)
		if err != nil {
			return err
		}

		base := derefType(ft)
		if base.Kind() != reflect.Slice && base.Kind() != reflect.Array {
			return fmt.Errorf("view %q has_many %q: field type %s is not a slice or array",
				def.Name, as.Field, ft)
		}

		elem := derefType(base.Elem())
		if elem.Kind() != reflect.Interface && elem != st.target.typ {
			return fmt.Errorf("view %q has_many %q: element type %s is not view %q type %s",
				def.Name, as.Field, elem, as.View, st.target.typ)
		}

		cv.steps = append(cv.steps, st)
	}

	return nil
}

func (r *Registry) compileAssoc(viewName string, as Assoc, t reflect.Type, kind stepKind) (step, reflect.Type, error) {
	idx, err := fieldIndex(t, as.Field)
	if err != nil {
		return step{}, nil, fmt.Errorf("view %q assoc %q: %w", viewName, as.Field, err)
	}

	target, ok := r.views[as.View]
	if !ok {
		return step{}, nil, fmt.Errorf("view %q assoc %q references view %q: %w",
			viewName, as.Field, as.View, ErrUnknownView)
	}

	ft := t.FieldByIndex(idx).Type

	return step{kind: kind, key: as.OutKey(), index: idx, target: target}, ft, nil
}

func fieldIndex(t reflect.Type, name string) ([]int, error) {
	f, ok := t.FieldByName(name)
	if !ok {
		if sug := closestField(t, name); sug != "" {
			return nil, fmt.Errorf("%w (did you mean %q?)", ErrUnknownField, sug)
		}

		return nil, ErrUnknownField
	}

	return f.Index, nil
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

type stepKind int

const (
	stepAttr stepKind = iota
	stepHasOne
	stepHasMany
)

type step struct {
	kind   stepKind
	key    string
	index  []int
	target *compiledView // nil for stepAttr
}

// compiledView is a view bound to a concrete struct type with its field
// accesses resolved. It serializes through the engine's Builder primitives.
type compiledView struct {
	name  string
	typ   reflect.Type
	steps []step
}

func (cv *compiledView) serializeInto(v any, b *serializer.Builder) {
	rv := reflect.ValueOf(v)

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			b.Fail(fmt.Errorf("view %q: nil value", cv.name))
			return
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Type() != cv.typ {
		b.Fail(fmt.Errorf("view %q: got %T, bound to %s: %w", cv.name, v, cv.typ, ErrTypeMismatch))
		return
	}

	for _, st := range cv.steps {
		st.apply(rv, b)
	}
}

func (st step) apply(rv reflect.Value, b *serializer.Builder) {
	fv := rv.FieldByIndex(st.index)

	switch st.kind {
	case stepAttr:
		b.Attr(st.key, fv.Interface())

	case stepHasOne:
		serializer.HasOne(b, st.key, fv.Interface(), serializer.Func[any](st.target.serializeInto))

	case stepHasMany:
		for fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				b.Fail(fmt.Errorf("has_many %q: nil slice pointer", st.key))
				return
			}

			fv = fv.Elem()
		}

		elems := make([]any, fv.Len())
		for i := range elems {
			elems[i] = fv.Index(i).Interface()
		}

		serializer.HasMany(b, st.key, elems, serializer.Func[any](st.target.serializeInto))
	}
}
