package ast

import (
	"encoding/json"
	"fmt"
)

// This file implements JSON decoding of a Program, used by the CLI
// (internal/maincmd) to load a program without a parser in scope: callers
// produce the JSON themselves, or pipe it in from an external front end.
// Each node is tagged with a "kind" discriminator so Expr and Stmt, which
// are interfaces, can be decoded polymorphically.

type jsonParam struct {
	Name string `json:"name"`
	Ref  bool   `json:"ref"`
}

type jsonProgram struct {
	Funcs []jsonFuncDecl `json:"funcs"`
}

type jsonFuncDecl struct {
	Name   string        `json:"name"`
	Params []jsonParam   `json:"params"`
	Body   []jsonRawNode `json:"body"`
}

type jsonRawNode = json.RawMessage

// UnmarshalJSON decodes a Program from the {"funcs": [...]} wire shape.
func (p *Program) UnmarshalJSON(data []byte) error {
	var raw jsonProgram
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Funcs = make([]*FuncDecl, len(raw.Funcs))
	for i, jf := range raw.Funcs {
		body, err := decodeStmts(jf.Body)
		if err != nil {
			return fmt.Errorf("func %s: %w", jf.Name, err)
		}
		p.Funcs[i] = &FuncDecl{
			Name:   jf.Name,
			Params: decodeParams(jf.Params),
			Body:   body,
		}
	}
	return nil
}

func decodeParams(jp []jsonParam) []*Param {
	params := make([]*Param, len(jp))
	for i, p := range jp {
		params[i] = &Param{Name: p.Name, Ref: p.Ref}
	}
	return params
}

type kindTag struct {
	Kind string `json:"kind"`
}

func decodeStmts(raw []jsonRawNode) ([]Stmt, error) {
	stmts := make([]Stmt, len(raw))
	for i, r := range raw {
		s, err := decodeStmt(r)
		if err != nil {
			return nil, err
		}
		stmts[i] = s
	}
	return stmts, nil
}

func decodeExprs(raw []jsonRawNode) ([]Expr, error) {
	exprs := make([]Expr, len(raw))
	for i, r := range raw {
		e, err := decodeExpr(r)
		if err != nil {
			return nil, err
		}
		exprs[i] = e
	}
	return exprs, nil
}

func decodeStmt(raw jsonRawNode) (Stmt, error) {
	var tag kindTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}
	switch tag.Kind {
	case "assign":
		var w struct {
			Name string      `json:"name"`
			Expr jsonRawNode `json:"expr"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		expr, err := decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Name: w.Name, Expr: expr}, nil
	case "call":
		call, err := decodeCall(raw)
		if err != nil {
			return nil, err
		}
		return &CallStmt{Call: call}, nil
	case "if":
		var w struct {
			Cond jsonRawNode   `json:"cond"`
			Then []jsonRawNode `json:"then"`
			Else []jsonRawNode `json:"else"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmts(w.Then)
		if err != nil {
			return nil, err
		}
		var els []Stmt
		if w.Else != nil {
			els, err = decodeStmts(w.Else)
			if err != nil {
				return nil, err
			}
		}
		return &IfStmt{Cond: cond, Then: then, Else: els}, nil
	case "while":
		var w struct {
			Cond jsonRawNode   `json:"cond"`
			Body []jsonRawNode `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStmt{Cond: cond, Body: body}, nil
	case "return":
		var w struct {
			Expr *jsonRawNode `json:"expr"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		if w.Expr == nil {
			return &ReturnStmt{}, nil
		}
		expr, err := decodeExpr(*w.Expr)
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{Expr: expr}, nil
	default:
		return nil, fmt.Errorf("ast: unknown statement kind %q", tag.Kind)
	}
}

func decodeCall(raw jsonRawNode) (*CallExpr, error) {
	var w struct {
		Name string        `json:"name"`
		Args []jsonRawNode `json:"args"`
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	args, err := decodeExprs(w.Args)
	if err != nil {
		return nil, err
	}
	return &CallExpr{Name: w.Name, Args: args}, nil
}

func decodeExpr(raw jsonRawNode) (Expr, error) {
	var tag kindTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}
	switch tag.Kind {
	case "int":
		var w struct {
			Val int64 `json:"val"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &IntLit{Val: w.Val}, nil
	case "string":
		var w struct {
			Val string `json:"val"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &StringLit{Val: w.Val}, nil
	case "bool":
		var w struct {
			Val bool `json:"val"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &BoolLit{Val: w.Val}, nil
	case "nil":
		return &NilLit{}, nil
	case "var":
		var w struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &VarExpr{Name: w.Name}, nil
	case "lambda":
		var w struct {
			Params []jsonParam   `json:"params"`
			Body   []jsonRawNode `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		body, err := decodeStmts(w.Body)
		if err != nil {
			return nil, err
		}
		return &LambdaExpr{Params: decodeParams(w.Params), Body: body}, nil
	case "call":
		return decodeCall(raw)
	case "binary":
		var w struct {
			Op    BinOp       `json:"op"`
			Left  jsonRawNode `json:"left"`
			Right jsonRawNode `json:"right"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		left, err := decodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: w.Op, Left: left, Right: right}, nil
	case "unary":
		var w struct {
			Op      UnaryOp     `json:"op"`
			Operand jsonRawNode `json:"operand"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		operand, err := decodeExpr(w.Operand)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: w.Op, Operand: operand}, nil
	default:
		return nil, fmt.Errorf("ast: unknown expression kind %q", tag.Kind)
	}
}
