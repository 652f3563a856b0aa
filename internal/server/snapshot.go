package server

import (
	"platemap-core/plate"
	"platemap/internal/session"
	"platemap/pkg/api"
)

// Snapshot converts a session to its wire view.
func Snapshot(ss *session.Session) api.SessionV1 {
	st := ss.State()
	p := ss.Params()
	v := api.SessionV1{
		ID:      ss.ID,
		Phase:   st.Phase().String(),
		Removed: plate.Labels(st.Removed()),
		Active:  ss.ActiveSelection(),
		Params:  &api.ParamsV1{I7Col: p.I7Col, I5Row: string(p.I5Row), Prefix: p.Prefix, I5RevComp: p.I5RevComp},
	}
	if w, ok := st.Start(); ok {
		v.Start = w.String()
	}
	if w, ok := st.End(); ok {
		v.End = w.String()
	}
	marks := ss.PlateMap()
	v.Plate = make([][]string, plate.Rows)
	for r := range marks {
		v.Plate[r] = make([]string, plate.Cols)
		for c, m := range marks[r] {
			v.Plate[r][c] = m.String()
		}
	}
	return v
}
