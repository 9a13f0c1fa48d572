// Copyright © 2026 The eolint authors

package lint

// Stable diagnostic codes. Every message begins with its code token so
// downstream tooling can group on the prefix without parsing.
const (
	EO001 = "EO001" // -er class name
	EO002 = "EO002" // -er method name
	EO003 = "EO003" // -er variable name
	EO004 = "EO004" // -er function name
	EO005 = "EO005" // None usage
	EO006 = "EO006" // code in constructor
	EO007 = "EO007" // getter/setter method
	EO008 = "EO008" // mutable object
	EO009 = "EO009" // static method
	EO010 = "EO010" // type discrimination / reflection
	EO011 = "EO011" // public method without contract
	EO012 = "EO012" // impure test method
	EO013 = "EO013" // ORM/ActiveRecord pattern
	EO014 = "EO014" // implementation inheritance
)

const (
	msgClassName   = "EO001 Class name '%s' violates -er principle (describes what it does, not what it is)"
	msgMethodName  = "EO002 Method name '%s' violates -er principle (should be noun, not verb)"
	msgVarName     = "EO003 Variable name '%s' violates -er principle (should be noun, not verb)"
	msgFuncName    = "EO004 Function name '%s' violates -er principle (should be noun, not verb)"
	msgNullUsage   = "EO005 Null (None) usage violates EO principle (avoid None)"
	msgCtorCode    = "EO006 Code in constructor violates EO principle (constructors should only assign parameters)"
	msgGetterSet   = "EO007 Getter/setter method '%s' violates EO principle (avoid getters/setters)"
	msgMutable     = "EO008 Mutable object violation: '%s' should be immutable"
	msgMutatedAttr = "EO008 Attribute '%s' mutated outside __init__"
	msgMutatingOp  = "EO008 Mutating method '%s' called on attribute '%s'"
	msgStatic      = "EO009 Static method '%s' violates EO principle (no static methods allowed)"
	msgReflection  = "EO010 isinstance/type casting violates EO principle (avoid type discrimination)"
	msgNoContract  = "EO011 Public method '%s' without contract (Protocol/ABC) violates EO principle"
	msgTestPurity  = "EO012 Test method '%s' contains non-assertThat statements (only assertThat allowed)"
	msgOrmPattern  = "EO013 ORM/ActiveRecord pattern '%s' violates EO principle"
	msgInheritance = "EO014 Implementation inheritance violates EO principle (class '%s' inherits from non-abstract class)"
)
