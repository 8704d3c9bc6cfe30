package syntax

// Children enumerates the immediate child nodes of n in a fixed per-kind
// order, skipping absent (nil) slots. The order is not always source order
// (a DictLit yields all keys before all values; decorators come after a
// definition's body). It gives transform's child recursion
// and internal/location's missing-position fill a single place to learn how
// to descend into every node kind, instead of duplicating a child-walk
// inside every caller.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}

	var out []Node
	add := func(c Node) {
		if c == nil {
			return
		}
		out = append(out, c)
	}
	addExprs := func(es []Expr) {
		for _, e := range es {
			if e != nil {
				out = append(out, e)
			}
		}
	}
	addStmts := func(ss []Stmt) {
		for _, s := range ss {
			if s != nil {
				out = append(out, s)
			}
		}
	}

	switch v := n.(type) {
	case *ListLit:
		addExprs(v.Elts)
	case *TupleLit:
		addExprs(v.Elts)
	case *SetLit:
		addExprs(v.Elts)
	case *DictLit:
		addExprs(v.Keys)
		addExprs(v.Values)
	case *Starred:
		add(v.Value)
	case *BinOp:
		add(v.Left)
		add(v.Right)
	case *UnaryOp:
		add(v.Operand)
	case *BoolOp:
		addExprs(v.Values)
	case *Compare:
		add(v.Left)
		addExprs(v.Comparators)
	case *IfExp:
		add(v.Test)
		add(v.Body)
		add(v.Orelse)
	case *Attribute:
		add(v.Value)
	case *Subscript:
		add(v.Value)
		add(v.Slice)
	case *Index:
		add(v.Value)
	case *Slice:
		add(v.Lower)
		add(v.Upper)
		add(v.Step)
	case *ExtSlice:
		addExprs(v.Dims)
	case *Call:
		add(v.Func)
		addExprs(v.Args)
		for _, k := range v.Keywords {
			add(k)
		}
		add(v.StarArgs)
		add(v.KwArgs)
	case *Keyword:
		add(v.Value)
	case *Comprehension:
		add(v.Target)
		add(v.Iter)
		addExprs(v.Ifs)
	case *ListComp:
		add(v.Elt)
		for _, g := range v.Generators {
			add(g)
		}
	case *SetComp:
		add(v.Elt)
		for _, g := range v.Generators {
			add(g)
		}
	case *DictComp:
		add(v.Key)
		add(v.Value)
		for _, g := range v.Generators {
			add(g)
		}
	case *GeneratorExp:
		add(v.Elt)
		for _, g := range v.Generators {
			add(g)
		}
	case *Lambda:
		add(&v.Args)
		add(v.Body)
	case *Assign:
		addExprs(v.Targets)
		add(v.Value)
	case *AugAssign:
		add(v.Target)
		add(v.Value)
	case *AnnAssign:
		add(v.Target)
		add(v.Annotation)
		add(v.Value)
	case *If:
		add(v.Test)
		addStmts(v.Body)
		addStmts(v.Orelse)
	case *While:
		add(v.Test)
		addStmts(v.Body)
		addStmts(v.Orelse)
	case *For:
		add(v.Target)
		add(v.Iter)
		addStmts(v.Body)
		addStmts(v.Orelse)
	case *Return:
		add(v.Value)
	case *Raise:
		add(v.Exc)
		add(v.Cause)
	case *Assert:
		add(v.Test)
		add(v.Msg)
	case *Delete:
		addExprs(v.Targets)
	case *Try:
		addStmts(v.Body)
		for _, h := range v.Handlers {
			add(h)
		}
		addStmts(v.Orelse)
		addStmts(v.Finally)
	case *ExceptHandler:
		add(v.Type)
		addStmts(v.Body)
	case *With:
		for _, it := range v.Items {
			add(it)
		}
		addStmts(v.Body)
	case *WithItem:
		add(v.ContextExpr)
		add(v.OptionalVars)
	case *ExprStmt:
		add(v.Value)
	case *Import:
		for _, a := range v.Names {
			add(a)
		}
	case *ImportFrom:
		for _, a := range v.Names {
			add(a)
		}
	case *Arg:
		add(v.Annotation)
	case *Arguments:
		for _, a := range v.Args {
			add(a)
		}
		for _, tp := range v.TupleParams {
			add(tp)
		}
		add(v.VarArg)
		for _, a := range v.KwOnlyArgs {
			add(a)
		}
		addExprs(v.KwOnlyDefaults)
		add(v.KwArg)
		addExprs(v.Defaults)
	case *TupleParam:
		addExprs(v.Elts)
	case *FunctionDef:
		add(&v.Args)
		addStmts(v.Body)
		addExprs(v.Decorators)
		add(v.Returns)
	case *AsyncFunctionDef:
		add(&v.Args)
		addStmts(v.Body)
		addExprs(v.Decorators)
		add(v.Returns)
	case *ClassDef:
		addExprs(v.Bases)
		for _, k := range v.Keywords {
			add(k)
		}
		addStmts(v.Body)
		addExprs(v.Decorators)
	case *Module:
		addStmts(v.Body)
	case *PrintStmt:
		add(v.Dest)
		addExprs(v.Values)
	case *ExecStmt:
		add(v.Body)
		add(v.Globals)
		add(v.Locals)
	case *Yield:
		add(v.Value)
	case *YieldFrom:
		add(v.Value)
	case *Await:
		add(v.Value)
	case *AsyncFor:
		add(v.Target)
		add(v.Iter)
		addStmts(v.Body)
		addStmts(v.Orelse)
	case *AsyncWith:
		for _, it := range v.Items {
			add(it)
		}
		addStmts(v.Body)
	}

	return out
}
