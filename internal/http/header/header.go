package header

// Fields is an ordered set of header name/value pairs. Names are matched
// literally; setting an existing name replaces its value in place.
type Fields interface {
	Value(key string) (string, bool)
	Set(key string, value string)
	Remove(key string)
	Len() int
	Keys() []string
	Clone() Fields
	Finalize(startLine string) []byte
}

type fields struct {
	keys   []string
	values map[string]string
}

func New() Fields {
	return &fields{
		values: make(map[string]string, 16),
	}
}

func (f *fields) Value(key string) (string, bool) {
	val, ok := f.values[key]
	return val, ok
}

func (f *fields) Set(key string, value string) {
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

func (f *fields) Remove(key string) {
	if _, exists := f.values[key]; !exists {
		return
	}
	delete(f.values, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
}

func (f *fields) Len() int {
	return len(f.keys)
}

func (f *fields) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

func (f *fields) Clone() Fields {
	clone := &fields{
		keys:   make([]string, len(f.keys)),
		values: make(map[string]string, len(f.values)),
	}
	copy(clone.keys, f.keys)
	for k, v := range f.values {
		clone.values[k] = v
	}
	return clone
}

func (f *fields) Finalize(startLine string) []byte {
	return finalize(startLine, f)
}
