package symtab

// ConstValueKind tags which field of a ConstValue is live.
type ConstValueKind int

const (
	ConstInt ConstValueKind = iota
	ConstFloat
	ConstString
	ConstBool
	ConstChar
)

// ConstValue is a folded compile-time constant, grounded on the original
// analyzer's std::variant<int, double, std::string, bool, char>. Go has no
// built-in tagged union, so this carries one field per alternative and a
// Kind discriminator instead.
type ConstValue struct {
	Kind ConstValueKind
	I    int64
	F    float64
	S    string
	B    bool
	C    rune
}

func IntValue(v int64) ConstValue     { return ConstValue{Kind: ConstInt, I: v} }
func FloatValue(v float64) ConstValue { return ConstValue{Kind: ConstFloat, F: v} }
func StringValue(v string) ConstValue { return ConstValue{Kind: ConstString, S: v} }
func BoolValue(v bool) ConstValue     { return ConstValue{Kind: ConstBool, B: v} }
func CharValue(v rune) ConstValue     { return ConstValue{Kind: ConstChar, C: v} }
