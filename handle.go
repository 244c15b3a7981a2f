package javaio

// handleTable maps wire handles to decoded entities. Handles are
// assigned in allocation order starting at baseWireHandle. The table
// only ever grows; TC_RESET, which would clear it, is not part of the
// supported grammar.
type handleTable struct {
	entities []Content
}

func (t *handleTable) allocate(v Content) int32 {
	t.entities = append(t.entities, v)
	return baseWireHandle + int32(len(t.entities)-1)
}

func (t *handleTable) resolve(handle int32) (Content, error) {
	i := handle - baseWireHandle
	if i < 0 || int(i) >= len(t.entities) {
		return nil, &BadHandleError{Handle: handle}
	}
	return t.entities[i], nil
}
