package gen

import (
	"fmt"
	"strings"

	"accessor-generator/internal/config"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/plan"
	"accessor-generator/internal/shape"
)

const (
	valueParam = "value"
	keyParam   = "key"

	receiverRef    = "&self"
	receiverMutRef = "&mut self"
	returnsSelf    = "&mut Self"

	attrInline  = "#[inline(always)]"
	attrMustUse = "#[must_use]"

	copyBound    = "::std::marker::Copy"
	cloneBound   = "::std::clone::Clone"
	intoBound    = "::std::convert::Into"
	tryIntoBound = "::std::convert::TryInto"
	optionPath   = "::std::option::Option"
)

var conventional = config.DefaultRename()

// SkipReason returns why no accessor is generated for the field of o, or ""
// when the field gets accessors.
func SkipReason(o plan.Options) string {
	switch {
	case o.Attributes.Skip:
		return "skip"
	case o.Attributes.IgnorePhantomData && shape.IsMarker(o.Type):
		return "phantom data"
	case o.Attributes.IgnoreUnderscore && shape.HasUnderscorePath(o.Type):
		return "underscore type"
	case shape.IsEmptyTuple(o.Type):
		return "empty tuple"
	case shape.IsNever(o.Type):
		return "never type"
	default:
		return ""
	}
}

// Functions returns the accessors for the field of o, in emission order.
// A field that is skipped has none.
func Functions(o plan.Options) ([]Function, error) {
	if SkipReason(o) != "" {
		return nil, nil
	}

	s := shape.Classify(o.Type)

	var (
		out  []Function
		diag diagnostic.Diagnostics
	)

	add := func(f Function, err error) {
		if err != nil {
			diag.Add(err)

			return
		}

		out = append(out, f)
	}

	if o.Attributes.Get {
		add(getter(o, s))
	}

	if o.Attributes.Set {
		add(setter(o))
	}

	if o.Attributes.TryInto {
		add(trySetter(o))
	}

	if o.Attributes.GetMut {
		add(getMut(o))
	}

	if o.Attributes.CollectionMagic && s.Class == shape.ClassCollection {
		add(collection(o, s), nil)
	}

	if diag.HasErrors() {
		return nil, diag.Err()
	}

	return out, nil
}

// functionName applies template to the field name, or the conventional
// template when renaming is disabled.
func functionName(o plan.Options, template, fallback config.Format) (string, error) {
	if !o.Attributes.Rename {
		template = fallback
	}

	return template.Apply(o.Field)
}

func attributes(o plan.Options, mustUse bool) []string {
	out := make([]string, 0, len(o.Forwarded)+2)
	for _, a := range o.Forwarded {
		out = append(out, a.Raw)
	}

	if o.Attributes.Inline {
		out = append(out, attrInline)
	}

	if mustUse && o.Attributes.MustUse {
		out = append(out, attrMustUse)
	}

	return out
}

func base(o plan.Options, kind FunctionKind, name, receiver string, mustUse bool) Function {
	return Function{
		Kind:       kind,
		Field:      o.Field,
		Name:       name,
		Visibility: o.FunctionVisibility(),
		Receiver:   receiver,
		Attrs:      attributes(o, mustUse),
	}
}

func getter(o plan.Options, s shape.Shape) (Function, error) {
	name, err := functionName(o, o.Rename.Get, conventional.Get)
	if err != nil {
		return Function{}, err
	}

	f := base(o, KindGetter, name, receiverRef, true)
	f.Const = o.Attributes.ConstFn
	field := "self." + o.Field

	switch {
	case o.Attributes.PrimitiveCopy && s.Copyable || o.Attributes.Copy:
		f.Body, f.Returns = BodyCopy, o.Type.String()
		f.Statements = []string{field}
	case o.Attributes.OptionAsRef && s.Class == shape.ClassOptional:
		f.Body, f.Returns = BodyAsRef, o.Type.WithLastArgs(shape.Ref(s.Inner, false)).String()
		f.Statements = []string{field + ".as_ref()"}
	case o.Attributes.Clone:
		f.Body, f.Returns = BodyClone, o.Type.String()
		f.Assertions = append(f.Assertions, Assertion("_AssertClone", o.Generics, o.Type, cloneBound))
		f.Statements = []string{field + ".clone()"}
	default:
		f.Body, f.Returns = BodyReference, shape.Ref(o.Type, false).String()
		f.Statements = []string{"&" + field}
	}

	if o.Attributes.Copy || o.Attributes.PrimitiveCopy && s.Copyable && !shape.IsReference(o.Type) {
		f.Assertions = append(f.Assertions, Assertion("_AssertCopy", o.Generics, o.Type, copyBound))
	}

	return f, nil
}

func setter(o plan.Options) (Function, error) {
	name, err := functionName(o, o.Rename.Set, conventional.Set)
	if err != nil {
		return Function{}, err
	}

	f := base(o, KindSetter, name, receiverMutRef, false)
	f.Returns = returnsSelf

	field := "self." + o.Field
	inner := shape.InnerOfOptional(o.Type)
	param := Param{Name: valueParam, Type: o.Type.String()}

	var assign string

	switch {
	case o.Attributes.Into && inner != nil && o.Attributes.StripOption:
		f.Generic, f.Bound = plan.ReservedGeneric, generic(intoBound, inner)
		param.Type = plan.ReservedGeneric
		f.Body, assign = BodyIntoSome, field+" = Some(value.into());"
	case o.Attributes.Into && inner != nil:
		f.Generic, f.Bound = plan.ReservedGeneric, generic(intoBound, inner)
		param.Type = optionPath + "<" + plan.ReservedGeneric + ">"
		f.Body, assign = BodyIntoOption, field+" = value.map(|v| v.into());"
	case o.Attributes.Into:
		f.Generic, f.Bound = plan.ReservedGeneric, generic(intoBound, o.Type)
		param.Type = plan.ReservedGeneric
		f.Body, assign = BodyInto, field+" = value.into();"
	case inner != nil && o.Attributes.StripOption:
		param.Type = inner.String()
		f.Body, assign = BodyWrapSome, field+" = Some(value);"
	default:
		f.Body, assign = BodyAssign, field+" = value;"
	}

	f.Params = []Param{param}
	f.Verify = o.Verify.Call()
	f.Statements = statements(assign, f.Verify, "self")

	return f, nil
}

func trySetter(o plan.Options) (Function, error) {
	name, err := functionName(o, o.Rename.TrySet, conventional.TrySet)
	if err != nil {
		return Function{}, err
	}

	f := base(o, KindTrySetter, name, receiverMutRef, false)
	f.Generic, f.BoundInWhere = plan.ReservedGeneric, true
	f.Returns = fmt.Sprintf("Result<%s, %s::Error>", returnsSelf, plan.ReservedGeneric)

	field := "self." + o.Field
	inner := shape.InnerOfOptional(o.Type)
	param := Param{Name: valueParam, Type: plan.ReservedGeneric}

	var assign string

	switch {
	case inner != nil && o.Attributes.StripOption:
		f.Bound = generic(tryIntoBound, inner)
		f.Body, assign = BodyTryIntoSome, field+" = Some(value.try_into()?);"
	case inner != nil:
		f.Bound = generic(tryIntoBound, inner)
		param.Type = optionPath + "<" + plan.ReservedGeneric + ">"
		f.Body, assign = BodyTryIntoOption, field+" = value.map(|v| v.try_into()).transpose()?;"
	default:
		f.Bound = generic(tryIntoBound, o.Type)
		f.Body, assign = BodyTryInto, field+" = value.try_into()?;"
	}

	f.Params = []Param{param}
	f.Verify = o.Verify.Call()
	f.Statements = statements(assign, f.Verify, "Ok(self)")

	return f, nil
}

func getMut(o plan.Options) (Function, error) {
	name, err := functionName(o, o.Rename.GetMut, conventional.GetMut)
	if err != nil {
		return Function{}, err
	}

	f := base(o, KindGetMut, name, receiverMutRef, true)
	f.Body, f.Returns = BodyMutReference, shape.Ref(o.Type, true).String()
	f.Statements = []string{"&mut self." + o.Field}

	return f, nil
}

// collection builds the push or insert helper. The assertion fails to
// compile when the field's type constructor is not the standard one.
func collection(o plan.Options, s shape.Shape) Function {
	c := s.Collection
	ctor := o.Type.PathString()

	f := base(o, KindCollection, c.Method()+"_"+config.Unraw(o.Field), receiverMutRef, true)
	f.Returns = returnsSelf

	units := make([]string, c.Arity())
	for i := range units {
		units[i] = "()"
	}

	assert := "__AssertCollection"
	if c.IsSequence() {
		assert = "__AssertVec"
	}

	f.Assertions = []string{
		fmt.Sprintf("struct %s(%s<%s>);", assert, c.StdPath(), strings.Join(units, ", ")),
		fmt.Sprintf("%s(%s::new());", assert, ctor),
	}

	var args []string

	if len(s.Args) == 2 {
		f.Params = append(f.Params, Param{Name: keyParam, Type: s.Args[0].String()})
		args = append(args, keyParam)
	}

	f.Params = append(f.Params, Param{Name: valueParam, Type: s.Args[len(s.Args)-1].String()})
	args = append(args, valueParam)

	f.Body = BodyInsert
	if c.IsSequence() {
		f.Body = BodyPush
	}

	f.Statements = []string{
		fmt.Sprintf("self.%s.%s(%s);", o.Field, c.Method(), strings.Join(args, ", ")),
		"self",
	}

	return f
}

// Assertion renders a struct declaration that only compiles when ty
// satisfies bound. The struct repeats the record's generics, with one
// PhantomData field per lifetime and type parameter.
func Assertion(name string, generics shape.Generics, ty *shape.Type, bound string) string {
	var fields []string

	for _, p := range generics.Lifetimes() {
		fields = append(fields, fmt.Sprintf("__field_%d: ::std::marker::PhantomData<&%s ()>", len(fields), p.Name))
	}

	for _, p := range generics.TypeParams() {
		fields = append(fields, fmt.Sprintf("__field_%d: ::std::marker::PhantomData<%s>", len(fields), p.Name))
	}

	body := "{}"
	if len(fields) > 0 {
		body = "{ " + strings.Join(fields, ", ") + " }"
	}

	return fmt.Sprintf("struct %s%s %s %s", name, generics.Declaration(),
		generics.WhereClause(ty.String()+": "+bound), body)
}

func generic(trait string, target *shape.Type) string {
	return trait + "<" + target.String() + ">"
}

func statements(assign, verify, result string) []string {
	out := []string{assign}
	if verify != "" {
		out = append(out, verify)
	}

	return append(out, result)
}
