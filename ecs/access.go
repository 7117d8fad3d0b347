package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// AccessKind separates the namespaces a shape can borrow from.
type AccessKind uint8

const (
	ComponentAccess AccessKind = iota
	ResourceAccess
	EntityAccess
)

func (k AccessKind) String() string {
	switch k {
	case ComponentAccess:
		return "component"
	case ResourceAccess:
		return "resource"
	case EntityAccess:
		return "entity registry"
	default:
		return fmt.Sprintf("AccessKind(%d)", uint8(k))
	}
}

// Access records one leaf of a shape borrowing a component or resource type.
type Access struct {
	Kind      AccessKind
	Type      reflect.Type
	Exclusive bool
}

func (a Access) String() string {
	mode := "shared"
	if a.Exclusive {
		mode = "exclusive"
	}
	return fmt.Sprintf("%s %s %s", mode, a.Kind, a.Type)
}

// AliasingError reports a shape that borrows the same type exclusively while
// also borrowing it a second time, shared or exclusive.
type AliasingError struct {
	Kind      AccessKind
	Type      reflect.Type
	Shared    int
	Exclusive int
}

func (e *AliasingError) Error() string {
	return fmt.Sprintf("ecs: conflicting access to %s %s: %d exclusive and %d shared borrow(s) in one shape",
		e.Kind, e.Type, e.Exclusive, e.Shared)
}

type accessKey struct {
	kind AccessKind
	typ  reflect.Type
}

type accessCount struct {
	shared    int
	exclusive int
}

// CheckAccess validates a shape's access records. Records are grouped by
// (kind, type) with multiplicities kept: any number of shared borrows is fine,
// a lone exclusive borrow is fine, and an exclusive borrow next to any other
// borrow of the same type is an aliasing violation. All violations are joined
// in first-seen order.
func CheckAccess(accesses []Access) error {
	if len(accesses) < 2 {
		return nil
	}

	counts := make(map[accessKey]*accessCount, len(accesses))
	order := make([]accessKey, 0, len(accesses))
	for _, a := range accesses {
		key := accessKey{kind: a.Kind, typ: a.Type}
		c, ok := counts[key]
		if !ok {
			c = &accessCount{}
			counts[key] = c
			order = append(order, key)
		}
		if a.Exclusive {
			c.exclusive++
		} else {
			c.shared++
		}
	}

	var errs []error
	for _, key := range order {
		c := counts[key]
		if c.exclusive == 0 || c.exclusive+c.shared == 1 {
			continue
		}
		errs = append(errs, &AliasingError{
			Kind:      key.kind,
			Type:      key.typ,
			Shared:    c.shared,
			Exclusive: c.exclusive,
		})
	}
	return errors.Join(errs...)
}
