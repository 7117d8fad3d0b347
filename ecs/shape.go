package ecs

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"
)

// A shape is a struct type whose fields describe the data a View or System
// wants for each entity:
//
//	Entity                       the entity handle
//	*C                           shared borrow of component C (required)
//	*C `ecs:"mut"`               exclusive borrow of component C
//	*C `ecs:"optional"`          shared borrow, nil when absent
//	*C `ecs:"optional,mut"`      exclusive borrow, nil when absent
//	Without[C]                   entity must not carry C
//	Res[R], ResMut[R]            shared/exclusive borrow of resource R
//	OptRes[R], OptResMut[R]      as above, nil when absent
//	Each[S]                      a nested View over shape S
//	*Commands                    the deferred command buffer
//	any other struct             a nested shape, flattened into its parent
//
// Embedded *C fields are always required.

type leafKind uint8

const (
	leafEntity leafKind = iota
	leafComponent
	leafExclude
	leafResource
	leafCommands
	leafView
)

func (k leafKind) String() string {
	switch k {
	case leafEntity:
		return "entity"
	case leafComponent:
		return "component"
	case leafExclude:
		return "exclude"
	case leafResource:
		return "resource"
	case leafCommands:
		return "commands"
	case leafView:
		return "view"
	default:
		return fmt.Sprintf("leafKind(%d)", uint8(k))
	}
}

// leafSpec describes one leaf of a compiled shape.
type leafSpec struct {
	kind      leafKind
	typ       reflect.Type
	exclusive bool
	optional  bool
	offset    uintptr
	path      string

	// leafView only.
	nested *shapeLayout
	assign func(dst unsafe.Pointer, w *World, cmds *Commands)
}

// perEntity reports whether the leaf needs an entity to resolve.
func (l *leafSpec) perEntity() bool {
	return l.kind == leafEntity || l.kind == leafComponent || l.kind == leafExclude
}

// shapeLeaf is implemented by the special field types of this package.
type shapeLeaf interface {
	shapeLeaf() leafSpec
}

var (
	shapeLeafType = reflect.TypeFor[shapeLeaf]()
	entityType    = reflect.TypeFor[Entity]()
	commandsType  = reflect.TypeFor[*Commands]()
)

// shapeLayout is the compiled, access-checked form of a shape type.
type shapeLayout struct {
	typ      reflect.Type
	leaves   []leafSpec
	accesses []Access
}

// perEntity reports whether any leaf needs an entity to resolve.
func (s *shapeLayout) perEntity() bool {
	for i := range s.leaves {
		if s.leaves[i].perEntity() {
			return true
		}
	}
	return false
}

type shapeCache struct {
	mu      sync.RWMutex
	layouts map[reflect.Type]*shapeLayout
}

var globalShapeCache = &shapeCache{layouts: make(map[reflect.Type]*shapeLayout)}

// layoutFor compiles and checks S once; later calls hit the cache. Shapes
// that fail the access check are never cached, so every use of them panics.
func layoutFor[S any]() *shapeLayout {
	return globalShapeCache.get(reflect.TypeFor[S]())
}

func (c *shapeCache) get(t reflect.Type) *shapeLayout {
	c.mu.RLock()
	layout, ok := c.layouts[t]
	c.mu.RUnlock()
	if ok {
		return layout
	}

	// Compiled outside the lock: nested Each[S] fields recurse into the cache.
	layout = compileShape(t)

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.layouts[t]; ok {
		return cached
	}
	c.layouts[t] = layout
	return layout
}

// compileShape flattens t into leaves and runs CheckAccess over them.
func compileShape(t reflect.Type) *shapeLayout {
	if t.Kind() != reflect.Struct {
		panic("ecs: shape type must be a struct, got " + t.String())
	}

	layout := &shapeLayout{typ: t}
	collectLeaves(layout, t, 0, "")

	for i := range layout.leaves {
		l := &layout.leaves[i]
		switch l.kind {
		case leafComponent, leafExclude:
			layout.accesses = append(layout.accesses, Access{Kind: ComponentAccess, Type: l.typ, Exclusive: l.exclusive})
		case leafResource:
			layout.accesses = append(layout.accesses, Access{Kind: ResourceAccess, Type: l.typ, Exclusive: l.exclusive})
		case leafView:
			layout.accesses = append(layout.accesses, l.nested.accesses...)
		}
	}

	if err := CheckAccess(layout.accesses); err != nil {
		panic(fmt.Errorf("shape %s: %w", t, err))
	}
	return layout
}

func collectLeaves(layout *shapeLayout, t reflect.Type, base uintptr, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		ft := field.Type
		offset := base + field.Offset
		path := prefix + field.Name

		if field.Tag.Get("ecs") != "" && ft.Kind() != reflect.Pointer {
			panic("ecs: shape field " + path + ": ecs tag is only valid on component pointer fields")
		}

		switch {
		case ft == entityType:
			layout.leaves = append(layout.leaves, leafSpec{kind: leafEntity, offset: offset, path: path})

		case ft == commandsType:
			layout.leaves = append(layout.leaves, leafSpec{kind: leafCommands, offset: offset, path: path})

		case ft.Implements(shapeLeafType):
			leaf := reflect.Zero(ft).Interface().(shapeLeaf).shapeLeaf()
			leaf.offset = offset
			leaf.path = path
			layout.leaves = append(layout.leaves, leaf)

		case ft.Kind() == reflect.Pointer:
			layout.leaves = append(layout.leaves, componentLeaf(field, offset, path))

		case ft.Kind() == reflect.Struct:
			collectLeaves(layout, ft, offset, path+".")

		default:
			panic("ecs: shape field " + path + " has unsupported type " + ft.String())
		}
	}
}

func componentLeaf(field reflect.StructField, offset uintptr, path string) leafSpec {
	ct := field.Type.Elem()
	validateComponentType(ct)

	leaf := leafSpec{kind: leafComponent, typ: ct, offset: offset, path: path}
	tag := field.Tag.Get("ecs")
	if tag == "" {
		return leaf
	}
	for _, opt := range strings.Split(tag, ",") {
		switch strings.TrimSpace(opt) {
		case "optional":
			if field.Anonymous {
				panic("ecs: shape field " + path + ": embedded component fields are always required")
			}
			leaf.optional = true
		case "mut":
			leaf.exclusive = true
		default:
			panic("invalid ecs tag value: \"" + tag + "\" (supported: \"optional\", \"mut\")")
		}
	}
	return leaf
}

// Without is a shape field that only matches entities not carrying C.
type Without[C any] struct{}

func (Without[C]) shapeLeaf() leafSpec {
	return leafSpec{kind: leafExclude, typ: reflect.TypeFor[C]()}
}
