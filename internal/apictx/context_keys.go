package apictx

import "context"

type ctxKey string

const (
	DepartmentKey ctxKey = "department"
	SlotKey       ctxKey = "slot"
	VisitorKey    ctxKey = "visitor"
)

// Visitor is the request-scoped session identity. It travels in the context
// instead of module-level state so no two requests can see each other's
// visitor.
type Visitor struct {
	Name  string
	Email string
}

func WithVisitor(ctx context.Context, v Visitor) context.Context {
	return context.WithValue(ctx, VisitorKey, v)
}

func VisitorFromContext(ctx context.Context) (Visitor, bool) {
	v, ok := ctx.Value(VisitorKey).(Visitor)
	return v, ok
}

func WithPlacement(ctx context.Context, department, slot string) context.Context {
	ctx = context.WithValue(ctx, DepartmentKey, department)
	return context.WithValue(ctx, SlotKey, slot)
}

func WithDepartment(ctx context.Context, department string) context.Context {
	return context.WithValue(ctx, DepartmentKey, department)
}

func DepartmentFromContext(ctx context.Context) (string, bool) {
	d, ok := ctx.Value(DepartmentKey).(string)
	return d, ok
}

func SlotFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(SlotKey).(string)
	return s, ok
}
