// Package schema provides a generic, reflective type-descriptor and value
// tree for extprot schema types, playing the role that a real schema
// compiler's generated code and in-memory message representation would
// play — both of which are out of scope for the wire runtime itself (see
// extprot's package doc). It lets the runtime's type-directed decode
// contract, default computation and versioning layer be exercised and
// tested dynamically, without a code generator.
//
// This mirrors creachadair/pson's schema-less Object tree (pson.go) and
// its wirepb/textpb packages, which represent protobuf values generically
// rather than through generated Go structs.
package schema

// Kind identifies which of the extprot schema kinds a Type describes.
type Kind int

const (
	Bool Kind = iota
	Byte
	Int
	Long
	Float
	String
	Tuple
	List
	Array
	Sum
	Record
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Byte:
		return "byte"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case String:
		return "string"
	case Tuple:
		return "tuple"
	case List:
		return "list"
	case Array:
		return "array"
	case Sum:
		return "sum"
	case Record:
		return "record"
	default:
		return "unknown"
	}
}

// Constructor describes one arm of a Sum type. A Constructor with no
// Fields is constant (wire type ENUM); one with Fields carries a tuple of
// them (wire type TUPLE).
type Constructor struct {
	Name   string
	Fields []Type
}

func (c Constructor) IsConstant() bool { return len(c.Fields) == 0 }

// RecordField is one named field of a Record.
type RecordField struct {
	Name string
	Type Type
}

// Type is a schema type descriptor. Only the fields relevant to its Kind
// are populated; see the constructor functions below.
type Type struct {
	Kind         Kind
	Elem         *Type         // List/Array element type
	Elems        []Type        // Tuple element types, in declaration order
	Fields       []RecordField // Record fields, in declaration order
	Constructors []Constructor // Sum constructors, in declaration order
	// DefaultLiteral overrides the inductive default for a String type,
	// corresponding to a schema's [@default v] annotation.
	DefaultLiteral *string
}

func NewBool() Type   { return Type{Kind: Bool} }
func NewByte() Type   { return Type{Kind: Byte} }
func NewInt() Type    { return Type{Kind: Int} }
func NewLong() Type   { return Type{Kind: Long} }
func NewFloat() Type  { return Type{Kind: Float} }
func NewString() Type { return Type{Kind: String} }

// NewStringWithDefault attaches a [@default v] literal to a string type.
func NewStringWithDefault(v string) Type {
	return Type{Kind: String, DefaultLiteral: &v}
}

func NewTuple(elems ...Type) Type { return Type{Kind: Tuple, Elems: elems} }
func NewList(elem Type) Type      { return Type{Kind: List, Elem: &elem} }
func NewArray(elem Type) Type     { return Type{Kind: Array, Elem: &elem} }

func NewSum(ctors ...Constructor) Type { return Type{Kind: Sum, Constructors: ctors} }
func NewRecord(fields ...RecordField) Type {
	return Type{Kind: Record, Fields: fields}
}

// Value is a generic, schema-tagged value tree: the dynamic in-memory
// representation a real code generator would instead materialize as
// distinct Go struct/enum types per schema type.
type Value struct {
	Kind Kind

	B bool
	Y byte
	I int32
	L int64
	F float64
	S string

	// Elems holds Tuple/List/Array elements.
	Elems []Value

	// Tag and Ctor identify the chosen Sum constructor; Elems holds its
	// field values (empty for a constant constructor).
	Tag  uint64
	Ctor string

	// Fields holds Record field values, keyed by field name.
	Fields map[string]Value
}

func BoolValue(v bool) Value    { return Value{Kind: Bool, B: v} }
func ByteValue(v byte) Value    { return Value{Kind: Byte, Y: v} }
func IntValue(v int32) Value    { return Value{Kind: Int, I: v} }
func LongValue(v int64) Value   { return Value{Kind: Long, L: v} }
func FloatValue(v float64) Value { return Value{Kind: Float, F: v} }
func StringValue(v string) Value { return Value{Kind: String, S: v} }

func TupleValue(elems ...Value) Value { return Value{Kind: Tuple, Elems: elems} }
func ListValue(elems ...Value) Value  { return Value{Kind: List, Elems: elems} }
func ArrayValue(elems ...Value) Value { return Value{Kind: Array, Elems: elems} }

func SumValue(tag uint64, ctor string, fields ...Value) Value {
	return Value{Kind: Sum, Tag: tag, Ctor: ctor, Elems: fields}
}

func RecordValue(fields map[string]Value) Value {
	return Value{Kind: Record, Fields: fields}
}
