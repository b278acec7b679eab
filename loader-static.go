package dper

// StaticLoader holds a fixed document in memory.
type StaticLoader struct {
	data []byte
}

var _ Loader = &StaticLoader{}

func NewStaticLoader(data []byte) *StaticLoader {
	return &StaticLoader{data}
}

func (l *StaticLoader) Load() ([]byte, error) {
	return l.data, nil
}
