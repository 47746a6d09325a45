package picocad

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Kind tags the variants a decoded table-literal value can take.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindTable
)

// Value is one node of the generic tree the table-literal evaluator returns.
// Exactly one of the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Number float64
	Str    string
	Bool   bool
	Table  *Table
}

// Table is the decoded form of one table literal: the bracketed positional
// part in order, plus the named fields keyed by string.
type Table struct {
	Seq   []Value
	Named map[string]Value
}

// EvalTable evaluates a table-literal string and returns its decoded tree.
// The literal is evaluated as an expression, never as a statement list, so
// no side-effecting code runs. A fresh evaluator state is created per call
// and closed on return; concurrent parses never share one.
func EvalTable(src string) (*Table, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString("return " + src); err != nil {
		return nil, fmt.Errorf("table literal: %w", err)
	}

	tbl, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("table literal: value is not a table")
	}

	v, err := fromLua(tbl)
	if err != nil {
		return nil, err
	}
	return v.Table, nil
}

// fromLua converts an evaluator value into the tagged Value tree.
func fromLua(lv lua.LValue) (Value, error) {
	switch v := lv.(type) {
	case lua.LNumber:
		return Value{Kind: KindNumber, Number: float64(v)}, nil
	case lua.LString:
		return Value{Kind: KindString, Str: string(v)}, nil
	case lua.LBool:
		return Value{Kind: KindBool, Bool: bool(v)}, nil
	case *lua.LTable:
		t := &Table{Named: make(map[string]Value)}
		for i := 1; ; i++ {
			item := v.RawGetInt(i)
			if item == lua.LNil {
				break
			}
			dv, err := fromLua(item)
			if err != nil {
				return Value{}, err
			}
			t.Seq = append(t.Seq, dv)
		}
		var walkErr error
		v.ForEach(func(k, item lua.LValue) {
			key, ok := k.(lua.LString)
			if !ok {
				return // positional entries were collected above
			}
			dv, err := fromLua(item)
			if err != nil {
				walkErr = err
				return
			}
			t.Named[string(key)] = dv
		})
		if walkErr != nil {
			return Value{}, walkErr
		}
		return Value{Kind: KindTable, Table: t}, nil
	default:
		return Value{}, fmt.Errorf("table literal: unsupported %s value", lv.Type())
	}
}
