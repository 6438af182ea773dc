package ucr

// TableInput is the form state of one table: either a [Single] object or [Many] objects.
// It can't be implemented outside this package.
type TableInput interface {
	// objects returns the table objects in order, and whether the table is a single-object one.
	objects() ([]Object, bool)
}

// Single is a table with exactly one row, like a parent record.
type Single struct {
	Object Object
}

// Many is a table with an ordered list of rows, like child records.
type Many struct {
	Objects []Object
}

var (
	_ TableInput = Single{}
	_ TableInput = Many{}
)

// SingleObject returns a TableInput with one object.
func SingleObject(object Object) Single {
	return Single{Object: object}
}

// ManyObjects returns a TableInput with a list of objects.
func ManyObjects(objects ...Object) Many {
	return Many{Objects: objects}
}

func (s Single) objects() ([]Object, bool) {
	return []Object{s.Object}, true
}

func (m Many) objects() ([]Object, bool) {
	return m.Objects, false
}

// FormInput is the whole form state, keyed by table name.
type FormInput map[string]TableInput
