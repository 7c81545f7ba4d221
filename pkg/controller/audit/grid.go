package audit

const (
	gridStep = 4
	gridMax  = 400
)

// gridValues is the set of allowed spacing values, 0px to 400px in steps of 4px.
// Values outside the table are violations even if they are multiples of 4.
var gridValues = newGridValues() //nolint:gochecknoglobals

func newGridValues() map[uint64]struct{} {
	m := make(map[uint64]struct{}, gridMax/gridStep+1)
	for v := uint64(0); v <= gridMax; v += gridStep {
		m[v] = struct{}{}
	}
	return m
}

func onGrid(v uint64) bool {
	_, ok := gridValues[v]
	return ok
}
