package tree

// Object is a JSON object that remembers key insertion order.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

// ObjectOf builds an object from alternating key/value arguments. It is meant
// for literals in tests and examples; it panics on a malformed argument list.
func ObjectOf(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("tree: ObjectOf needs key/value pairs")
	}
	o := NewObject()
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("tree: ObjectOf keys must be strings")
		}
		o.Set(k, FromAny(kv[i+1]))
	}
	return o
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) sealed()    {}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Get returns the value stored under k.
func (o *Object) Get(k string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[k]
	return v, ok
}

// Has reports whether k is present.
func (o *Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

// Set stores v under k, keeping the original position of an existing key.
// Setting nil deletes the key.
func (o *Object) Set(k string, v Value) {
	if v == nil {
		o.Delete(k)
		return
	}
	if o.vals == nil {
		o.vals = map[string]Value{}
	}
	if _, exists := o.vals[k]; !exists {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

// Delete removes k.
func (o *Object) Delete(k string) {
	if o == nil {
		return
	}
	if _, exists := o.vals[k]; !exists {
		return
	}
	delete(o.vals, k)
	for i, kk := range o.keys {
		if kk == k {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Range calls fn for each entry in insertion order until fn returns false.
// Keys added by fn during iteration are not visited.
func (o *Object) Range(fn func(k string, v Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.Keys() {
		v, ok := o.vals[k]
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}
