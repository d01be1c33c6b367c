package dragplan

// gestureAttrs returns slog key/value pairs identifying the active gesture,
// followed by extra.
func (e *Engine) gestureAttrs(extra ...any) []any {
	attrs := make([]any, 0, 6+len(extra))
	attrs = append(attrs, "gesture", e.gestureID, "state", e.state.String())
	if e.item != nil {
		attrs = append(attrs, "item", e.item.ID)
	}
	return append(attrs, extra...)
}
