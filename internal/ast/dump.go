package ast

// Dump renders an AST node as a nested, JSON-marshalable tree whose leaves
// are the literal attributes of each node — the structured representation
// the CLI's `ast` command emits (spec.md §6). Unlike String(), which is a
// debugging rendering, Dump() is meant to be serialized.
func Dump(n Node) map[string]any {
	switch node := n.(type) {
	case *Program:
		items := make([]map[string]any, len(node.Statements))
		for i, s := range node.Statements {
			items[i] = Dump(s)
		}
		return map[string]any{"kind": "program", "body": items}

	case *Block:
		items := make([]map[string]any, len(node.Body))
		for i, s := range node.Body {
			items[i] = Dump(s)
		}
		return map[string]any{"kind": "block", "body": items}

	case *VarDecl:
		m := map[string]any{"kind": "vardecl", "type": node.DeclaredType, "name": node.Name}
		if node.Init != nil {
			m["init"] = Dump(node.Init)
		}
		return m

	case *Assign:
		return map[string]any{"kind": "assign", "target": Dump(node.Target), "value": Dump(node.Value)}

	case *ExprStmt:
		return map[string]any{"kind": "expr", "expr": Dump(node.Expr)}

	case *If:
		m := map[string]any{"kind": "if", "cond": Dump(node.Cond), "then": Dump(node.Then)}
		if node.Otherwise != nil {
			m["else"] = Dump(node.Otherwise)
		}
		return m

	case *While:
		return map[string]any{"kind": "while", "cond": Dump(node.Cond), "body": Dump(node.Body)}

	case *For:
		m := map[string]any{"kind": "for", "body": Dump(node.Body)}
		if node.Init != nil {
			m["init"] = Dump(node.Init)
		}
		if node.Cond != nil {
			m["cond"] = Dump(node.Cond)
		}
		if node.Post != nil {
			m["post"] = Dump(node.Post)
		}
		return m

	case *Foreach:
		return map[string]any{"kind": "foreach", "name": node.Name, "seq": node.Seq, "body": Dump(node.Body)}

	case *Return:
		m := map[string]any{"kind": "return"}
		if node.Value != nil {
			m["value"] = Dump(node.Value)
		}
		return m

	case *FuncDecl:
		body := Dump(node.Body)
		return map[string]any{
			"kind":       "func",
			"name":       node.Name,
			"params":     node.Params,
			"returnType": node.ReturnType,
			"body":       body,
		}

	case *NumberLiteral:
		if node.IsFloat {
			return map[string]any{"kind": "number", "value": node.FltValue}
		}
		return map[string]any{"kind": "number", "value": node.IntValue}

	case *StringLiteral:
		return map[string]any{"kind": "string", "value": node.Value}

	case *BoolLiteral:
		return map[string]any{"kind": "bool", "value": node.Value}

	case *VarRef:
		return map[string]any{"kind": "var", "name": node.Name}

	case *Call:
		args := make([]map[string]any, len(node.Args))
		for i, a := range node.Args {
			args[i] = Dump(a)
		}
		return map[string]any{"kind": "call", "callee": node.Callee, "args": args}

	case *Index:
		return map[string]any{"kind": "index", "target": node.Target, "index": Dump(node.Idx)}

	case *Unary:
		return map[string]any{"kind": "unary", "op": node.Op, "expr": Dump(node.Expr)}

	case *Binary:
		return map[string]any{"kind": "bin", "op": node.Op, "left": Dump(node.Left), "right": Dump(node.Right)}

	default:
		return map[string]any{"kind": "unknown"}
	}
}
