package transform_test

import (
	"strings"
	"testing"

	"github.com/sirkon/untrustedpy/dialect"
	"github.com/sirkon/untrustedpy/syntax"
	"github.com/sirkon/untrustedpy/transform"
	"github.com/sirkon/untrustedpy/transform/config"
)

// kindSample describes how to exercise one node kind through the
// dispatcher: a minimal tree containing a node of that kind, the dialect
// it belongs to, and whether the kind must be refused. Go's type switch
// cannot fail the build when a node type lacks a case, so this table plus
// syntax.AllKinds is the exhaustiveness guarantee: adding a kind to the
// syntax package without extending this table fails the test, and adding
// it to the table without a dispatcher case trips the unknown-kind
// warning check below.
type kindSample struct {
	build   func() syntax.Node
	dialect dialect.Dialect
	denied  bool
}

func expr(e syntax.Expr) func() syntax.Node  { return func() syntax.Node { return e } }
func stmt(st syntax.Stmt) func() syntax.Node { return func() syntax.Node { return st } }

func kindSamples() map[syntax.Kind]kindSample {
	num := func() *syntax.Num { return &syntax.Num{Base: at(1), Literal: "1"} }
	ld := func(id string) *syntax.Name { return load(1, id) }

	return map[syntax.Kind]kindSample{
		syntax.KindNum:          {build: expr(num())},
		syntax.KindStr:          {build: expr(&syntax.Str{Base: at(1), Value: "s"})},
		syntax.KindBytes:        {build: expr(&syntax.Bytes{Base: at(1), Value: []byte("b")})},
		syntax.KindNameConstant: {build: expr(&syntax.NameConstant{Base: at(1), Value: "None"})},
		syntax.KindEllipsis:     {build: expr(&syntax.EllipsisLit{Base: at(1)}), denied: true},
		syntax.KindListLit:      {build: expr(&syntax.ListLit{Base: at(1), Elts: []syntax.Expr{num()}})},
		syntax.KindTupleLit:     {build: expr(&syntax.TupleLit{Base: at(1), Elts: []syntax.Expr{num()}})},
		syntax.KindSetLit:       {build: expr(&syntax.SetLit{Base: at(1), Elts: []syntax.Expr{num()}})},
		syntax.KindDictLit: {build: expr(&syntax.DictLit{
			Base:   at(1),
			Keys:   []syntax.Expr{&syntax.Str{Base: at(1), Value: "k"}},
			Values: []syntax.Expr{num()},
		})},
		syntax.KindStarred: {build: expr(&syntax.Starred{Base: at(1), Value: ld("a"), Ctx: syntax.Load})},
		syntax.KindName:    {build: expr(ld("a"))},
		syntax.KindBinOp:   {build: expr(&syntax.BinOp{Base: at(1), Left: ld("a"), Op: syntax.Add, Right: ld("b")})},
		syntax.KindUnaryOp: {build: expr(&syntax.UnaryOp{Base: at(1), Op: syntax.USub, Operand: ld("a")})},
		syntax.KindBoolOp:  {build: expr(&syntax.BoolOp{Base: at(1), Op: syntax.And, Values: []syntax.Expr{ld("a"), ld("b")}})},
		syntax.KindCompare: {build: expr(&syntax.Compare{
			Base:        at(1),
			Left:        ld("a"),
			Ops:         []syntax.CmpOpKind{syntax.Lt},
			Comparators: []syntax.Expr{ld("b")},
		})},
		syntax.KindIfExp:     {build: expr(&syntax.IfExp{Base: at(1), Test: ld("c"), Body: ld("a"), Orelse: ld("b")})},
		syntax.KindAttribute: {build: expr(&syntax.Attribute{Base: at(1), Value: ld("a"), Attr: "b", Ctx: syntax.Load})},
		syntax.KindSubscript: {build: expr(&syntax.Subscript{
			Base:  at(1),
			Value: ld("a"),
			Slice: &syntax.Index{Base: at(1), Value: num()},
			Ctx:   syntax.Load,
		})},
		syntax.KindIndex: {build: expr(&syntax.Subscript{
			Base:  at(1),
			Value: ld("a"),
			Slice: &syntax.Index{Base: at(1), Value: num()},
			Ctx:   syntax.Load,
		})},
		syntax.KindSlice: {build: expr(&syntax.Subscript{
			Base:  at(1),
			Value: ld("a"),
			Slice: &syntax.Slice{Base: at(1), Lower: num()},
			Ctx:   syntax.Load,
		})},
		syntax.KindExtSlice: {build: expr(&syntax.Subscript{
			Base:  at(1),
			Value: ld("a"),
			Slice: &syntax.ExtSlice{Base: at(1), Dims: []syntax.Expr{&syntax.Index{Base: at(1), Value: num()}}},
			Ctx:   syntax.Load,
		})},
		syntax.KindCall: {build: expr(&syntax.Call{Base: at(1), Func: ld("f"), Args: []syntax.Expr{num()}})},
		syntax.KindKeyword: {build: expr(&syntax.Call{
			Base:     at(1),
			Func:     ld("f"),
			Keywords: []*syntax.Keyword{{Base: at(1), Arg: "k", Value: num()}},
		})},
		syntax.KindListComp: {build: expr(&syntax.ListComp{
			Base:       at(1),
			Elt:        ld("e"),
			Generators: []*syntax.Comprehension{{Base: at(1), Target: store(1, "e"), Iter: ld("xs")}},
		})},
		syntax.KindSetComp: {build: expr(&syntax.SetComp{
			Base:       at(1),
			Elt:        ld("e"),
			Generators: []*syntax.Comprehension{{Base: at(1), Target: store(1, "e"), Iter: ld("xs")}},
		})},
		syntax.KindDictComp: {build: expr(&syntax.DictComp{
			Base:       at(1),
			Key:        ld("e"),
			Value:      ld("e"),
			Generators: []*syntax.Comprehension{{Base: at(1), Target: store(1, "e"), Iter: ld("xs")}},
		})},
		syntax.KindGeneratorExp: {build: expr(&syntax.GeneratorExp{
			Base:       at(1),
			Elt:        ld("e"),
			Generators: []*syntax.Comprehension{{Base: at(1), Target: store(1, "e"), Iter: ld("xs")}},
		})},
		syntax.KindComprehension: {build: expr(&syntax.ListComp{
			Base:       at(1),
			Elt:        ld("e"),
			Generators: []*syntax.Comprehension{{Base: at(1), Target: store(1, "e"), Iter: ld("xs"), Ifs: []syntax.Expr{ld("c")}}},
		})},
		syntax.KindAssign:    {build: stmt(&syntax.Assign{Base: at(1), Targets: []syntax.Expr{store(1, "x")}, Value: num()})},
		syntax.KindAugAssign: {build: stmt(&syntax.AugAssign{Base: at(1), Target: store(1, "x"), Op: syntax.Add, Value: num()})},
		syntax.KindAnnAssign: {build: stmt(&syntax.AnnAssign{Base: at(1), Target: store(1, "x"), Annotation: ld("int"), Value: num(), Simple: true})},
		syntax.KindIf:        {build: stmt(&syntax.If{Base: at(1), Test: ld("c"), Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}}})},
		syntax.KindWhile:     {build: stmt(&syntax.While{Base: at(1), Test: ld("c"), Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}}})},
		syntax.KindFor: {build: stmt(&syntax.For{
			Base:   at(1),
			Target: store(1, "x"),
			Iter:   ld("xs"),
			Body:   []syntax.Stmt{&syntax.Pass{Base: at(1)}},
		})},
		syntax.KindBreak:    {build: stmt(&syntax.Break{Base: at(1)})},
		syntax.KindContinue: {build: stmt(&syntax.Continue{Base: at(1)})},
		syntax.KindPass:     {build: stmt(&syntax.Pass{Base: at(1)})},
		syntax.KindReturn:   {build: stmt(&syntax.Return{Base: at(1), Value: num()})},
		syntax.KindRaise:    {build: stmt(&syntax.Raise{Base: at(1), Exc: ld("e")})},
		syntax.KindAssert:   {build: stmt(&syntax.Assert{Base: at(1), Test: ld("c")})},
		syntax.KindDelete:   {build: stmt(&syntax.Delete{Base: at(1), Targets: []syntax.Expr{&syntax.Name{Base: at(1), ID: "x", Ctx: syntax.Del}}})},
		syntax.KindTry: {build: stmt(&syntax.Try{
			Base:     at(1),
			Body:     []syntax.Stmt{&syntax.Pass{Base: at(1)}},
			Handlers: []*syntax.ExceptHandler{{Base: at(1), Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}}}},
		})},
		syntax.KindExceptHandler: {build: stmt(&syntax.Try{
			Base: at(1),
			Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}},
			Handlers: []*syntax.ExceptHandler{{
				Base: at(1),
				Type: ld("Exception"),
				Name: "e",
				Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}},
			}},
		})},
		syntax.KindWith: {build: stmt(&syntax.With{
			Base:  at(1),
			Items: []*syntax.WithItem{{Base: at(1), ContextExpr: ld("cm")}},
			Body:  []syntax.Stmt{&syntax.Pass{Base: at(1)}},
		})},
		syntax.KindWithItem: {build: stmt(&syntax.With{
			Base:  at(1),
			Items: []*syntax.WithItem{{Base: at(1), ContextExpr: ld("cm"), OptionalVars: store(1, "x")}},
			Body:  []syntax.Stmt{&syntax.Pass{Base: at(1)}},
		})},
		syntax.KindExprStmt: {build: stmt(&syntax.ExprStmt{Base: at(1), Value: num()})},
		syntax.KindGlobal:   {build: stmt(&syntax.Global{Base: at(1), Names: []string{"x"}})},
		syntax.KindImport:   {build: stmt(&syntax.Import{Base: at(1), Names: []*syntax.Alias{{Base: at(1), Name: "os"}}})},
		syntax.KindImportFrom: {build: stmt(&syntax.ImportFrom{
			Base:   at(1),
			Module: "os",
			Names:  []*syntax.Alias{{Base: at(1), Name: "path"}},
		})},
		syntax.KindAlias: {build: stmt(&syntax.Import{Base: at(1), Names: []*syntax.Alias{{Base: at(1), Name: "os", AsName: "o"}}})},
		syntax.KindFunctionDef: {build: stmt(&syntax.FunctionDef{
			Base: at(1),
			Name: "f",
			Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}},
		})},
		syntax.KindLambda: {build: expr(&syntax.Lambda{Base: at(1), Body: num()})},
		syntax.KindArguments: {build: stmt(&syntax.FunctionDef{
			Base: at(1),
			Name: "f",
			Args: syntax.Arguments{Args: []*syntax.Arg{{Base: at(1), Name: "x"}}},
			Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}},
		})},
		syntax.KindArg: {build: stmt(&syntax.FunctionDef{
			Base: at(1),
			Name: "f",
			Args: syntax.Arguments{Args: []*syntax.Arg{{Base: at(1), Name: "x"}}},
			Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}},
		})},
		syntax.KindClassDef: {build: stmt(&syntax.ClassDef{Base: at(1), Name: "C", Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}}})},
		syntax.KindModule:   {build: stmt(&syntax.Module{Base: at(1), Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}}})},
		syntax.KindPrintStmt: {
			build:   stmt(&syntax.PrintStmt{Base: at(1), Values: []syntax.Expr{num()}, Nl: true}),
			dialect: dialect.Legacy2,
		},
		syntax.KindExecStmt: {build: stmt(&syntax.ExecStmt{Base: at(1), Body: &syntax.Str{Base: at(1), Value: "x"}}), denied: true},
		syntax.KindTupleParam: {
			build: stmt(&syntax.FunctionDef{
				Base: at(1),
				Name: "f",
				Args: syntax.Arguments{
					Args:        []*syntax.Arg{{Base: at(1)}},
					TupleParams: []*syntax.TupleParam{{Base: at(1), Index: 0, Elts: []syntax.Expr{store(1, "a"), store(1, "b")}}},
				},
				Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}},
			}),
			dialect: dialect.Legacy2,
		},
		syntax.KindYield:     {build: expr(&syntax.Yield{Base: at(1), Value: num()}), denied: true},
		syntax.KindYieldFrom: {build: expr(&syntax.YieldFrom{Base: at(1), Value: ld("g")}), denied: true},
		syntax.KindAsyncFunctionDef: {
			build:  stmt(&syntax.AsyncFunctionDef{Base: at(1), Name: "f", Body: []syntax.Stmt{&syntax.Pass{Base: at(1)}}}),
			denied: true,
		},
		syntax.KindAwait: {build: expr(&syntax.Await{Base: at(1), Value: ld("x")}), denied: true},
		syntax.KindAsyncFor: {
			build: stmt(&syntax.AsyncFor{
				Base:   at(1),
				Target: store(1, "x"),
				Iter:   ld("xs"),
				Body:   []syntax.Stmt{&syntax.Pass{Base: at(1)}},
			}),
			denied: true,
		},
		syntax.KindAsyncWith: {
			build: stmt(&syntax.AsyncWith{
				Base:  at(1),
				Items: []*syntax.WithItem{{Base: at(1), ContextExpr: ld("cm")}},
				Body:  []syntax.Stmt{&syntax.Pass{Base: at(1)}},
			}),
			denied: true,
		},
		syntax.KindNonlocal: {build: stmt(&syntax.Nonlocal{Base: at(1), Names: []string{"x"}}), denied: true},
	}
}

// TestKindCoverage walks every recognized kind through the dispatcher and
// checks the allow/deny split: allowed kinds must never trip the
// unknown-kind warning, denied kinds must produce the standard refusal.
func TestKindCoverage(t *testing.T) {
	samples := kindSamples()

	for _, kind := range syntax.AllKinds() {
		sample, ok := samples[kind]
		if !ok {
			t.Fatalf("kind %s has no dispatcher coverage sample; audit it before adding one", kind)
		}

		t.Run(kind.String(), func(t *testing.T) {
			cfg := config.Default()
			if sample.dialect != dialect.DialectInvalid {
				cfg.Dialect = sample.dialect
			}

			res, err := transform.New(cfg).Transform(sample.build())
			if err != nil {
				t.Fatalf("transform: %v", err)
			}

			if sample.denied {
				want := kind.String() + " statements are not allowed."
				for _, r := range res.Errors {
					if r.Message == want {
						return
					}
				}
				t.Fatalf("denied kind did not produce %q: %v", want, res.Errors)
			}

			for _, r := range res.Warnings {
				if strings.Contains(r.Message, "statement is not known") {
					t.Fatalf("allowed kind tripped the unknown-kind path: %v", r)
				}
			}
		})
	}
}
